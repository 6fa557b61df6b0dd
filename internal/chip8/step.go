package chip8

// instruction is a fetched instruction split into its four nibbles.
type instruction struct {
	n1, n2, n3, n4 byte
}

func (in instruction) x() byte {
	return in.n2
}

func (in instruction) y() byte {
	return in.n3
}

// nn returns the low byte immediate.
func (in instruction) nn() byte {
	return in.n3<<4 | in.n4
}

// nnn returns the 12 bit address.
func (in instruction) nnn() uint16 {
	return uint16(in.n2)<<8 | uint16(in.n3)<<4 | uint16(in.n4)
}

// Step executes a single instruction and decrements the timers.
// An instruction that does not match the opcode table returns an
// *UnknownOpcodeError and leaves the machine unchanged.
func (m *Machine) Step() error {
	hi := m.Memory[m.PC&addressMask]
	lo := m.Memory[(m.PC+1)&addressMask]
	in := instruction{
		n1: hi >> 4,
		n2: hi & 0x0F,
		n3: lo >> 4,
		n4: lo & 0x0F,
	}

	if err := m.execute(in); err != nil {
		return err
	}

	// every instruction is 2 bytes, control flow instructions compensate for this
	m.PC += 2

	if m.Delay > 0 {
		m.Delay--
	}
	if m.Sound > 0 {
		m.Sound--
	}
	return nil
}

func (m *Machine) unknown(in instruction) error {
	return &UnknownOpcodeError{
		PC:      m.PC,
		Nibbles: [4]byte{in.n1, in.n2, in.n3, in.n4},
	}
}

func (m *Machine) execute(in instruction) error {
	x, y := in.x(), in.y()

	switch in.n1 {
	case 0x0:
		switch {
		// 00E0 CLS
		case in.n2 == 0 && in.nn() == 0xE0:
			m.Display = [DisplaySize]byte{}

		// 00EE RET
		case in.n2 == 0 && in.nn() == 0xEE:
			m.PC = m.Stack[m.SP&stackMask]
			m.SP--

		default:
			return m.unknown(in)
		}

	// 1NNN JP addr
	case 0x1:
		m.jump(in.nnn())

	// 2NNN CALL addr
	case 0x2:
		m.SP++
		m.Stack[m.SP&stackMask] = m.PC
		m.jump(in.nnn())

	// 3XNN SE Vx, byte
	case 0x3:
		m.skipIf(m.V[x] == in.nn())

	// 4XNN SNE Vx, byte
	case 0x4:
		m.skipIf(m.V[x] != in.nn())

	// 5XY_ SE Vx, Vy
	case 0x5:
		m.skipIf(m.V[x] == m.V[y])

	// 6XNN LD Vx, byte
	case 0x6:
		m.V[x] = in.nn()

	// 7XNN ADD Vx, byte
	case 0x7:
		m.V[x] += in.nn()

	case 0x8:
		return m.executeArithmetic(in)

	// 9XY0 SNE Vx, Vy
	case 0x9:
		if in.n4 != 0 {
			return m.unknown(in)
		}
		m.skipIf(m.V[x] != m.V[y])

	// ANNN LD I, addr
	case 0xA:
		m.I = in.nnn()

	// BNNN JP V0, addr
	// not compensated, the step ends 2 bytes past V0+NNN
	case 0xB:
		m.PC = uint16(m.V[0]) + in.nnn()

	// CXNN RND Vx, byte
	case 0xC:
		m.V[x] = m.random() & in.nn()

	// DXYN DRW Vx, Vy, nibble
	case 0xD:
		m.draw(m.V[x], m.V[y], in.n4)

	case 0xE:
		switch in.nn() {
		// EX9E SKP Vx
		case 0x9E:
			m.skipIf(m.Input == m.V[x])

		// EXA1 SKNP Vx
		case 0xA1:
			m.skipIf(m.Input != m.V[x])

		default:
			return m.unknown(in)
		}

	case 0xF:
		return m.executeMisc(in)
	}

	return nil
}

// executeArithmetic handles the 8XYN register to register operations.
// VF is written after VX, so a flag result wins when X is F.
func (m *Machine) executeArithmetic(in instruction) error {
	x, y := in.x(), in.y()
	vx, vy := m.V[x], m.V[y]

	switch in.n4 {
	// 8XY0 adds instead of copying
	case 0x0:
		m.V[x] = vx + vy

	case 0x1:
		m.V[x] = vx | vy

	case 0x2:
		m.V[x] = vx & vy

	case 0x3:
		m.V[x] = vx ^ vy

	case 0x4:
		sum := uint16(vx) + uint16(vy)
		m.V[x] = byte(sum)
		m.V[FlagRegister] = byte(sum >> 8)

	case 0x5:
		m.V[x] = vx - vy
		m.V[FlagRegister] = boolToByte(vx >= vy)

	case 0x6:
		m.V[FlagRegister] = m.V[x] | 0x1
		m.V[x] >>= 1

	case 0x7:
		m.V[x] = vy - vx
		m.V[FlagRegister] = boolToByte(vy >= vx)

	case 0xE:
		m.V[FlagRegister] = m.V[x] | 0x8
		m.V[x] <<= 1

	default:
		return m.unknown(in)
	}

	return nil
}

// executeMisc handles the FXNN timer, memory and input instructions.
func (m *Machine) executeMisc(in instruction) error {
	x := in.x()

	switch in.nn() {
	// FX07 LD Vx, DT
	case 0x07:
		m.V[x] = m.Delay

	// FX0A LD Vx, K
	case 0x0A:
		m.V[x] = m.Input

	// FX15 LD DT, Vx
	case 0x15:
		m.Delay = m.V[x]

	// FX18 LD ST, Vx
	case 0x18:
		m.Sound = m.V[x]

	// FX1E ADD I, Vx
	case 0x1E:
		m.I += uint16(m.V[x])

	// FX29 LD F, Vx
	case 0x29:
		m.I = uint16(m.V[x]) * FontGlyphSize

	// FX33 LD B, Vx
	case 0x33:
		value := m.V[x]
		m.Memory[m.I&addressMask] = value / 100
		m.Memory[(m.I+1)&addressMask] = (value % 100) / 10
		m.Memory[(m.I+2)&addressMask] = value % 10

	// FX55 LD [I], Vx
	case 0x55:
		for i := uint16(0); i <= uint16(x); i++ {
			m.Memory[(m.I+i)&addressMask] = m.V[i]
		}

	// FX65 LD Vx, [I]
	case 0x65:
		for i := uint16(0); i <= uint16(x); i++ {
			m.V[i] = m.Memory[(m.I+i)&addressMask]
		}

	default:
		return m.unknown(in)
	}

	return nil
}

// jump sets the program counter so that the advance at the end of the step
// lands exactly on the target address.
func (m *Machine) jump(address uint16) {
	m.PC = address - 2
}

// skipIf skips the next instruction if the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.PC += 2
	}
}

// draw XORs an n byte sprite from memory at I onto the display. Every sprite row
// is combined with a single display byte, the X coordinate is not shifted within
// that byte. VF is set if any set pixel was cleared.
func (m *Machine) draw(vx, vy, n byte) {
	collision := false

	for row := byte(0); row < n; row++ {
		// byte arithmetic, offsets past the last row wrap around to the top
		offset := vx/8 + (vy+row)*BytesPerRow
		sprite := m.Memory[(m.I+uint16(row))&addressMask]

		current := m.Display[offset]
		result := current ^ sprite
		if current&^result != 0 {
			collision = true
		}
		m.Display[offset] = result
	}

	m.V[FlagRegister] = boolToByte(collision)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
