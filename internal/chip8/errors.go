package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrROMTooLarge is returned when a program does not fit into program memory.
	ErrROMTooLarge = errors.New("rom too large")

	// ErrUnknownOpcode is returned when an instruction does not match the opcode table.
	ErrUnknownOpcode = errors.New("unimplemented instruction")
)

// UnknownOpcodeError describes an instruction that could not be decoded.
// The machine state is left as it was before the failed step.
type UnknownOpcodeError struct {
	PC      uint16  // address of the instruction
	Nibbles [4]byte // instruction nibbles, most significant first
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%s %X%X%X%X at address 0x%04X",
		ErrUnknownOpcode, e.Nibbles[0], e.Nibbles[1], e.Nibbles[2], e.Nibbles[3], e.PC)
}

// Unwrap allows errors.Is(err, ErrUnknownOpcode).
func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// Opcode returns the instruction word built from the nibbles.
func (e *UnknownOpcodeError) Opcode() uint16 {
	return uint16(e.Nibbles[0])<<12 | uint16(e.Nibbles[1])<<8 | uint16(e.Nibbles[2])<<4 | uint16(e.Nibbles[3])
}
