package fileprocessor

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrogolib/log"
)

// Command describes an entry point of the emulator.
type Command struct {
	Version string
	Commit  string
	Date    string

	Frontend Frontend

	// Interactive reports whether the frontend can be shown, headless mode
	// is used otherwise. A nil function always shows the frontend.
	Interactive func() bool

	Output io.Writer // results of non interactive modes, defaults to stdout
}

// Run parses the command line arguments, the first argument being the program
// name, and processes the ROM file. It returns the exit code of the process.
func Run(ctx context.Context, cmd Command, arguments []string) int {
	opts, err := cli.Parse(arguments[0], arguments[1:], os.Stderr)
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			PrintBanner(logger, opts, cmd.Version, cmd.Commit, cmd.Date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		return 1
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	PrintBanner(logger, opts, cmd.Version, cmd.Commit, cmd.Date)

	if !opts.Headless && !opts.Disasm && cmd.Interactive != nil && !cmd.Interactive() {
		logger.Warn("No interactive terminal, running headless")
		opts.Headless = true
	}

	output := cmd.Output
	if output == nil {
		output = os.Stdout
	}

	if err := ProcessFile(ctx, logger, opts, output, cmd.Frontend); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return 0
		}
		logger.Error("Running ROM failed", log.Err(err))
		return 1
	}
	return 0
}
