// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// Parse parses the given arguments and returns the program options.
func Parse(name string, arguments []string, output io.Writer) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags, name: name}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	name  string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.flags == nil {
		fmt.Println(e.msg)
		return
	}
	fmt.Printf("usage: %s [options] <ROM file>\n\n", e.name)
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Hz < 1 || opts.Hz > 100_000 {
		return fmt.Errorf("invalid instruction rate %d, valid range is 1-100000", opts.Hz)
	}
	if opts.Cycles < 0 {
		return fmt.Errorf("invalid cycle count %d", opts.Cycles)
	}
	if opts.Debug && opts.Quiet {
		opts.Quiet = false
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Paused, "paused", false, "start with the machine paused")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a user interface and print the final machine state")
	flags.IntVar(&opts.Hz, "hz", options.DefaultHz, "instructions executed per second")
	flags.IntVar(&opts.Cycles, "cycles", 1000, "number of instructions to execute in headless mode")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 uses a random seed")
}
