// Package options contains the program options.
package options

import "time"

// DefaultHz is the default number of instructions executed per second.
const DefaultHz = 500

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file, passed as positional argument
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// HostFlags contains options of the host loop that drives the machine.
type HostFlags struct {
	Disasm   bool // print a listing of the ROM instead of running it
	Paused   bool
	Headless bool
	Hz       int
	Cycles   int
	Seed     uint64
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	HostFlags
}

// StepInterval returns the duration between two executed instructions.
func (p Program) StepInterval() time.Duration {
	hz := p.Hz
	if hz <= 0 {
		hz = DefaultHz
	}
	return time.Second / time.Duration(hz)
}
