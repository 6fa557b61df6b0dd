package chip8

import (
	"fmt"
	"math/rand/v2"
)

// State contains the complete observable state of a machine.
type State struct {
	Memory [MemorySize]byte
	V      [RegisterCount]byte
	I      uint16 // address register

	// Delay and Sound are decremented once per step while nonzero.
	Delay byte
	Sound byte

	PC    uint16
	Stack [StackSize]uint16
	SP    byte // slot of the most recently pushed return address

	Display [DisplaySize]byte

	// Input is the currently pressed key 0x0-0xF or NoKey, written by the host
	// between steps.
	Input byte
}

// Machine is a CHIP-8 virtual machine.
type Machine struct {
	State

	random func() byte
}

// Option configures a machine.
type Option func(*Machine)

// WithRandom sets the byte source used by the CXNN instruction.
func WithRandom(fn func() byte) Option {
	return func(m *Machine) {
		m.random = fn
	}
}

// WithSeed makes the CXNN instruction deterministic by seeding its byte source.
func WithSeed(seed uint64) Option {
	rnd := rand.New(rand.NewPCG(seed, seed))
	return WithRandom(func() byte {
		return byte(rnd.UintN(256))
	})
}

// New returns a new machine with the font and the given program loaded.
func New(rom []byte, options ...Option) (*Machine, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	m := &Machine{
		random: func() byte {
			return byte(rand.UintN(256))
		},
	}
	for _, option := range options {
		option(m)
	}

	copy(m.Memory[:], Font[:])
	copy(m.Memory[ProgramStart:], rom)
	m.PC = ProgramStart
	m.Input = NoKey
	return m, nil
}

// Snapshot returns a copy of the current machine state.
func (m *Machine) Snapshot() State {
	return m.State
}

// Opcode returns the instruction word at the program counter.
func (s *State) Opcode() uint16 {
	return uint16(s.Memory[s.PC&addressMask])<<8 | uint16(s.Memory[(s.PC+1)&addressMask])
}

// Pixel returns whether the pixel at the given display coordinate is set.
// Coordinates outside of the display are reported as unset.
func (s *State) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	b := s.Display[y*BytesPerRow+x/8]
	return b&(0x80>>(x%8)) != 0
}
