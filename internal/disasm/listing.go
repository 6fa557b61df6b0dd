package disasm

import (
	"fmt"
	"slices"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// Program returns a listing of a program loaded at the start address.
// Destinations of jumps and calls inside the program get a label that
// replaces the address operand of the referencing instructions.
func Program(start uint16, data []byte) []string {
	labels := jumpDestinations(start, data)
	lines := make([]string, 0, len(data)/opcodeSize+len(labels))

	for offset := 0; offset < len(data); offset += opcodeSize {
		address := start + uint16(offset)
		if name, ok := labels[address]; ok {
			lines = append(lines, name+":")
		}

		opcode, ok := Decode(data[offset:])
		if !ok {
			lines = append(lines, fmt.Sprintf("%04X: %02X    db $%02X", address, data[offset], data[offset]))
			break
		}

		code := Format(opcode)
		if name, ok := labels[opcode&0x0FFF]; ok && isBranch(opcode) {
			ins, _ := Lookup(opcode)
			code = fmt.Sprintf("%s %s", ins.Name, name)
		}

		// the destination is the second byte of this instruction
		if name, ok := labels[address+1]; ok {
			code = fmt.Sprintf("%s ; branch into instruction detected: %s", code, name)
		}

		lines = append(lines, fmt.Sprintf("%04X: %04X  %s", address, opcode, code))
	}
	return lines
}

// jumpDestinations returns the names of all jump and call destinations that
// are inside the program. Call destinations are named as functions.
func jumpDestinations(start uint16, data []byte) map[uint16]string {
	end := int(start) + len(data)
	calls := map[uint16]bool{}
	var destinations []uint16

	for offset := 0; offset+opcodeSize <= len(data); offset += opcodeSize {
		opcode, _ := Decode(data[offset:])
		if !isBranch(opcode) {
			continue
		}

		address := opcode & 0x0FFF
		if address < start || int(address) >= end {
			continue
		}
		if opcode&0xF000 == 0x2000 {
			calls[address] = true
		}
		if !slices.Contains(destinations, address) {
			destinations = append(destinations, address)
		}
	}

	labels := make(map[uint16]string, len(destinations))
	for _, address := range destinations {
		if calls[address] {
			labels[address] = fmt.Sprintf(funcNaming, address)
		} else {
			labels[address] = fmt.Sprintf(labelNaming, address)
		}
	}
	return labels
}

// isBranch returns whether the opcode is a JP addr or CALL addr instruction.
func isBranch(opcode uint16) bool {
	switch opcode & 0xF000 {
	case 0x1000, 0x2000:
		return true
	default:
		return false
	}
}
