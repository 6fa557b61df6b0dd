// Package main implements the terminal entry point of the CHIP-8 emulator
package main

import (
	"context"
	"os"

	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/tui"
	"github.com/retroenv/retrogolib/app"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cmd := fileprocessor.Command{
		Version: version,
		Commit:  commit,
		Date:    date,
		Frontend: func(ctx context.Context, r *runner.Runner, name string) error {
			return tui.New(r, name).Run(ctx)
		},
		// the terminal frontend needs an interactive terminal
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}

	os.Exit(fileprocessor.Run(ctx, cmd, os.Args))
}
