// Package main implements the window entry point of the CHIP-8 emulator
package main

import (
	"context"
	"os"

	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrochip8/internal/gui"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/app"
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
			return gui.Run(ctx, r, "retrochip8 - "+name)
		},
	}

	os.Exit(fileprocessor.Run(ctx, cmd, os.Args))
}
