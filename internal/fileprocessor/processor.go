// Package fileprocessor handles ROM loading and running the machine
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Frontend presents a running machine until the user quits.
type Frontend func(ctx context.Context, r *runner.Runner, name string) error

// ProcessFile handles the complete workflow for a ROM file. Depending on the
// options the ROM is disassembled, run headless for a number of cycles or
// passed to the frontend. Results of non interactive modes are written to
// the output.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	output io.Writer, frontend Frontend) error {

	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		for _, line := range disasm.Program(chip8.ProgramStart, rom.Data) {
			if _, err := fmt.Fprintln(output, line); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
		}
		return nil
	}

	r, err := setupRunner(logger, rom, opts)
	if err != nil {
		return fmt.Errorf("setting up runner: %w", err)
	}

	if opts.Headless {
		return runHeadless(logger, r, opts, output)
	}
	return frontend(ctx, r, rom.Name)
}

func setupRunner(logger *log.Logger, rom *loader.ROM, opts options.Program) (*runner.Runner, error) {
	m, err := chip8.New(rom.Data, config.CreateMachineOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	logger.Info("Loaded ROM",
		log.String("name", rom.Name),
		log.Int("size", len(rom.Data)))

	return runner.New(logger, m, opts), nil
}

// runHeadless executes the configured number of cycles and writes the final
// machine state. A halted machine still writes its state before the error is
// returned.
func runHeadless(logger *log.Logger, r *runner.Runner, opts options.Program, output io.Writer) error {
	executed, runErr := r.RunCycles(opts.Cycles)

	state := r.Snapshot()
	logger.Info("Machine state",
		log.Int("cycles", executed),
		log.Hex("pc", state.PC),
		log.Hex("i", state.I),
		log.Uint8("sp", state.SP),
		log.Uint8("delay", state.Delay),
		log.Uint8("sound", state.Sound))

	if err := writeState(output, &state); err != nil {
		return fmt.Errorf("writing machine state: %w", err)
	}

	if runErr != nil {
		return fmt.Errorf("running machine: %w", runErr)
	}
	return nil
}

// writeState writes the registers and the display as text.
func writeState(w io.Writer, state *chip8.State) error {
	registers := make([]string, 0, chip8.RegisterCount)
	for i, v := range state.V {
		registers = append(registers, fmt.Sprintf("V%X=%02X", i, v))
	}

	border := "+" + strings.Repeat("-", chip8.Width) + "+"
	lines := []string{strings.Join(registers, " "), border}
	for _, line := range display.TextFrame(state) {
		lines = append(lines, "|"+line+"|")
	}
	lines = append(lines, border)

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
