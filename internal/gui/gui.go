// Package gui implements a window frontend for the emulator.
package gui

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/runner"
	"golang.org/x/image/font/basicfont"
)

const (
	// Scale is the size of a machine pixel in screen pixels.
	Scale = 10

	statusHeight = 18
)

var statusColor = color.RGBA{190, 190, 190, 255}

// hostKeys contains the keyboard keys in key code order, matching the
// layout of the keypad package.
var hostKeys = [chip8.KeyCount]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// Game implements ebiten.Game for a runner.
type Game struct {
	ctx    context.Context
	runner *runner.Runner
	window *ebiten.Image
	held   bool // a key of this window is latched
}

// New returns a game that shows the machine of the runner until the
// context is canceled.
func New(ctx context.Context, r *runner.Runner) *Game {
	return &Game{
		ctx:    ctx,
		runner: r,
	}
}

// Run starts the runner and shows the window until it is closed or the
// context is canceled.
func Run(ctx context.Context, r *runner.Runner, title string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Run(ctx)
	}()

	width, height := layoutSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(New(ctx, r)); err != nil {
		return fmt.Errorf("running window: %w", err)
	}

	cancel()
	<-done
	return r.Err()
}

// Update handles the keyboard input.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.runner.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.runner.Paused() {
		_ = g.runner.StepOnce()
	}

	return g.updateInput()
}

// updateInput latches the first held keypad key, the latch is released when
// no keypad key is held anymore.
func (g *Game) updateInput() error {
	for i, key := range hostKeys {
		if ebiten.IsKeyPressed(key) {
			g.held = true
			return g.runner.Press(byte(i))
		}
	}

	if g.held {
		g.held = false
		g.runner.Release()
	}
	return nil
}

// Draw renders the display and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(chip8.Width, chip8.Height)
	}

	state := g.runner.Snapshot()
	g.window.WritePixels(display.RGBA(&state).Pix)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(Scale, Scale)
	screen.DrawImage(g.window, opts)

	text.Draw(screen, g.status(), basicfont.Face7x13, 4, chip8.Height*Scale+13, statusColor)
}

// Layout returns the fixed logical screen size, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return layoutSize()
}

func (g *Game) status() string {
	switch {
	case g.runner.Err() != nil:
		return fmt.Sprintf("halted: %s", g.runner.Err())
	case g.runner.Paused():
		return fmt.Sprintf("paused, %d instructions  (p resume, n step, esc quit)", g.runner.Cycles())
	default:
		return fmt.Sprintf("running, %d instructions  (p pause, esc quit)", g.runner.Cycles())
	}
}

func layoutSize() (int, int) {
	return chip8.Width * Scale, chip8.Height*Scale + statusHeight
}
