// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
// Debug level enables the instruction trace of the runner.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachineOptions returns the machine options for the program options.
// A zero seed keeps the default random source.
func CreateMachineOptions(opts options.Program) []chip8.Option {
	var machineOptions []chip8.Option
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, chip8.WithSeed(opts.Seed))
	}
	return machineOptions
}
