package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newTestMachine returns a machine with the given program loaded at ProgramStart
// and a fixed random byte source.
func newTestMachine(t *testing.T, program ...byte) *Machine {
	t.Helper()
	m, err := New(program, WithRandom(func() byte { return 0xA5 }))
	assert.NoError(t, err)
	return m
}

// load writes bytes to memory starting at the given address.
func load(m *Machine, address uint16, data ...byte) {
	copy(m.Memory[address:], data)
}

func TestNew(t *testing.T) {
	rom := []byte{0x12, 0x34, 0x56}
	m, err := New(rom)
	assert.NoError(t, err)
	assert.NotNil(t, m)

	assert.Equal(t, Font[:], m.Memory[:len(Font)])
	assert.Equal(t, byte(0x12), m.Memory[ProgramStart])
	assert.Equal(t, byte(0x34), m.Memory[ProgramStart+1])
	assert.Equal(t, byte(0x56), m.Memory[ProgramStart+2])
	assert.Equal(t, byte(0), m.Memory[ProgramStart+3])

	assert.Equal(t, uint16(ProgramStart), m.PC)
	assert.Equal(t, byte(0), m.SP)
	assert.Equal(t, uint16(0), m.I)
	assert.Equal(t, byte(0), m.Delay)
	assert.Equal(t, byte(0), m.Sound)
	assert.Equal(t, byte(NoKey), m.Input)
	assert.Equal(t, [RegisterCount]byte{}, m.V)
	assert.Equal(t, [StackSize]uint16{}, m.Stack)
	assert.Equal(t, [DisplaySize]byte{}, m.Display)
}

func TestNew_ROMSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"maximum size", MaxROMSize, false},
		{"one byte too large", MaxROMSize + 1, true},
		{"full memory", MemorySize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := make([]byte, tt.size)
			for i := range rom {
				rom[i] = byte(i)
			}

			m, err := New(rom)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrROMTooLarge))
				assert.True(t, m == nil)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, rom, m.Memory[ProgramStart:ProgramStart+tt.size])
			assert.Equal(t, Font[:], m.Memory[:len(Font)])
		})
	}
}

func TestMachine_Opcode(t *testing.T) {
	m := newTestMachine(t, 0xA2, 0xF0)
	assert.Equal(t, uint16(0xA2F0), m.Opcode())
}

func TestState_Opcode(t *testing.T) {
	var s State
	s.Memory[MaxAddress] = 0x12
	s.Memory[0] = 0x34
	s.Memory[0x300] = 0xAB
	s.Memory[0x301] = 0xCD

	tests := []struct {
		name     string
		pc       uint16
		expected uint16
	}{
		{"in range", 0x300, 0xABCD},
		{"second byte wraps to address 0", MaxAddress, 0x1234},
		{"address is masked to 12 bits", 0x1300, 0xABCD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.PC = tt.pc
			assert.Equal(t, tt.expected, s.Opcode())
		})
	}
}

func TestMachine_Snapshot(t *testing.T) {
	m := newTestMachine(t, 0x60, 0x12)
	snapshot := m.Snapshot()

	assert.NoError(t, m.Step())
	assert.Equal(t, byte(0), snapshot.V[0])
	assert.Equal(t, uint16(ProgramStart), snapshot.PC)
	assert.Equal(t, byte(0x12), m.V[0])
}

func TestState_Pixel(t *testing.T) {
	var s State
	s.Display[0] = 0x80
	s.Display[BytesPerRow*2+1] = 0x01
	s.Display[DisplaySize-1] = 0x01

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top left", 0, 0, true},
		{"next to top left", 1, 0, false},
		{"last bit of second byte in third row", 15, 2, true},
		{"bottom right", Width - 1, Height - 1, true},
		{"negative x", -1, 0, false},
		{"x out of range", Width, 0, false},
		{"y out of range", 0, Height, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Pixel(tt.x, tt.y))
		})
	}
}

func TestWithSeed(t *testing.T) {
	program := []byte{0xC0, 0xFF, 0xC1, 0xFF, 0xC2, 0xFF}

	run := func() [RegisterCount]byte {
		m, err := New(program, WithSeed(42))
		assert.NoError(t, err)
		for range 3 {
			assert.NoError(t, m.Step())
		}
		return m.V
	}

	assert.Equal(t, run(), run())
}

func TestUnknownOpcodeError(t *testing.T) {
	err := &UnknownOpcodeError{PC: 0x204, Nibbles: [4]byte{0x0, 0x1, 0x2, 0x3}}

	assert.Equal(t, uint16(0x0123), err.Opcode())
	assert.Equal(t, "unimplemented instruction 0123 at address 0x0204", err.Error())
	assert.True(t, errors.Is(err, ErrUnknownOpcode))
}
