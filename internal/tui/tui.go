// Package tui implements a terminal frontend for the emulator.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/jroimartin/gocui"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/runner"
)

// view names
const (
	displayView   = "display"
	registersView = "registers"
	keysView      = "keys"
	statusView    = "status"
)

const refreshInterval = time.Second / 60

// UI is the terminal frontend of a runner.
type UI struct {
	runner  *runner.Runner
	name    string // ROM name shown in the display title
	braille bool   // only accessed from the main loop
}

// New returns a terminal frontend for the given runner.
func New(r *runner.Runner, name string) *UI {
	return &UI{
		runner: r,
		name:   name,
	}
}

// Run starts the runner and shows the terminal frontend until the user
// quits or the context is canceled.
func (ui *UI) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("creating terminal ui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(ui.layout)
	if err := ui.setKeybindings(g); err != nil {
		return fmt.Errorf("setting key bindings: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go ui.runMachine(ctx, g)
	go ui.refresh(ctx, g)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return ui.runner.Err()
}

// runMachine runs the machine and ends the main loop once the context is
// canceled. A halted machine stays on screen with the error in the status
// view until then.
func (ui *UI) runMachine(ctx context.Context, g *gocui.Gui) {
	runUntilCanceled(ctx, ui.runner.Run, func() {
		g.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
	})
}

// runUntilCanceled calls run and then waits for the context to be canceled
// before calling quit, also when run returned early.
func runUntilCanceled(ctx context.Context, run func(context.Context) error, quit func()) {
	_ = run(ctx)
	<-ctx.Done()
	quit()
}

// refresh redraws all views at a fixed rate.
// gocui views can only be updated safely from within the main loop.
func (ui *UI) refresh(ctx context.Context, g *gocui.Gui) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Update(ui.draw)
		}
	}
}

func (ui *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	displayRight := chip8.Width + 1
	displayBottom := chip8.Height/2 + 1
	sideRight := max(maxX-1, displayRight+34)

	views := []struct {
		name           string
		title          string
		x0, y0, x1, y1 int
	}{
		{displayView, ui.name, 0, 0, displayRight, displayBottom},
		{registersView, "Registers", displayRight + 1, 0, sideRight, 9},
		{keysView, "Keys", displayRight + 1, 10, sideRight, displayBottom},
		{statusView, "Status", 0, displayBottom + 1, sideRight, max(maxY-1, displayBottom+4)},
	}

	for _, vw := range views {
		v, err := g.SetView(vw.name, vw.x0, vw.y0, vw.x1, vw.y1)
		if err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return fmt.Errorf("setting view %s: %w", vw.name, err)
			}
			v.Title = vw.title
		}
	}
	return nil
}

func (ui *UI) draw(g *gocui.Gui) error {
	state := ui.runner.Snapshot()

	writers := []struct {
		name  string
		write func(v *gocui.View)
	}{
		{displayView, func(v *gocui.View) { writeDisplay(v, &state, ui.braille) }},
		{registersView, func(v *gocui.View) { writeRegisters(v, &state) }},
		{keysView, func(v *gocui.View) { writeKeys(v, state.Input) }},
		{statusView, func(v *gocui.View) {
			writeStatus(v, ui.runner.Paused(), ui.runner.Cycles(), ui.runner.Err())
		}},
	}

	for _, w := range writers {
		v, err := g.View(w.name)
		if err != nil {
			return fmt.Errorf("getting view %s: %w", w.name, err)
		}
		v.Clear()
		w.write(v)
	}
	return nil
}

func (ui *UI) setKeybindings(g *gocui.Gui) error {
	for _, key := range []gocui.Key{gocui.KeyCtrlC, gocui.KeyEsc} {
		if err := g.SetKeybinding("", key, gocui.ModNone, quit); err != nil {
			return err
		}
	}

	for _, r := range keypad.Layout {
		variants := []rune{r}
		if upper := unicode.ToUpper(r); upper != r {
			variants = append(variants, upper)
		}
		for _, variant := range variants {
			if err := g.SetKeybinding("", variant, gocui.ModNone, ui.pressKey(variant)); err != nil {
				return err
			}
		}
	}

	bindings := []struct {
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeySpace, ui.releaseKey},
		{'p', ui.togglePause},
		{'b', ui.toggleBraille},
		{'n', ui.stepOnce},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// pressKey returns a handler that latches the key code of the host key.
// Terminals do not report key releases, the latch is held until another
// key is pressed or it is released explicitly.
func (ui *UI) pressKey(r rune) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		key, ok := keypad.Key(r)
		if !ok {
			return nil
		}
		return ui.runner.Press(key)
	}
}

func (ui *UI) releaseKey(*gocui.Gui, *gocui.View) error {
	ui.runner.Release()
	return nil
}

func (ui *UI) toggleBraille(*gocui.Gui, *gocui.View) error {
	ui.braille = !ui.braille
	return nil
}

func (ui *UI) togglePause(*gocui.Gui, *gocui.View) error {
	ui.runner.Toggle()
	return nil
}

// stepOnce executes a single instruction while paused. A failed step halts
// the runner and is shown in the status view.
func (ui *UI) stepOnce(*gocui.Gui, *gocui.View) error {
	if !ui.runner.Paused() {
		return nil
	}
	_ = ui.runner.StepOnce()
	return nil
}

func quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}
