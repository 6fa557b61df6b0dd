package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// loop is a program that jumps to itself forever.
var loop = []byte{0x12, 0x00}

func newTestRunner(t *testing.T, rom []byte, paused bool) *Runner {
	t.Helper()

	m, err := chip8.New(rom, chip8.WithSeed(1))
	assert.NoError(t, err)

	var opts options.Program
	opts.Debug = true
	opts.Paused = paused
	opts.Hz = 100_000
	return New(log.NewTestLogger(t), m, opts)
}

func TestRunner_RunCycles(t *testing.T) {
	r := newTestRunner(t, []byte{0x70, 0x01, 0x12, 0x00}, false) // ADD V0, 1; JP $200

	n, err := r.RunCycles(10)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, uint64(10), r.Cycles())
	assert.Equal(t, byte(5), r.Snapshot().V[0])
}

func TestRunner_RunCycles_UnknownOpcode(t *testing.T) {
	r := newTestRunner(t, []byte{0x60, 0x01, 0x00, 0x00}, false)

	n, err := r.RunCycles(5)
	assert.Equal(t, 1, n)
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))

	var opErr *chip8.UnknownOpcodeError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint16(0x202), opErr.PC)

	// a halted runner stays halted
	assert.True(t, r.Paused())
	r.Resume()
	assert.True(t, r.Paused())
	assert.True(t, r.Toggle())
	assert.ErrorIs(t, r.StepOnce(), chip8.ErrUnknownOpcode)
	assert.Equal(t, uint64(1), r.Cycles())
	assert.ErrorIs(t, r.Err(), chip8.ErrUnknownOpcode)
}

func TestRunner_Run_Canceled(t *testing.T) {
	r := newTestRunner(t, loop, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	err := <-done
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, r.Cycles() > 0)
	assert.NoError(t, r.Err())
}

func TestRunner_Run_UnknownOpcode(t *testing.T) {
	r := newTestRunner(t, []byte{0xFF, 0xFF}, false)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx)
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))
	assert.Equal(t, uint64(0), r.Cycles())
}

func TestRunner_Run_Paused(t *testing.T) {
	r := newTestRunner(t, loop, true)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, uint64(0), r.Cycles())
	assert.Equal(t, uint16(chip8.ProgramStart), r.Snapshot().PC)
}

func TestRunner_PauseResume(t *testing.T) {
	r := newTestRunner(t, loop, false)
	assert.False(t, r.Paused())

	r.Pause()
	assert.True(t, r.Paused())
	r.Resume()
	assert.False(t, r.Paused())

	assert.True(t, r.Toggle())
	assert.False(t, r.Toggle())
}

func TestRunner_StepOnce(t *testing.T) {
	r := newTestRunner(t, []byte{0x60, 0x07, 0x61, 0x08}, true)

	assert.NoError(t, r.StepOnce())
	s := r.Snapshot()
	assert.Equal(t, byte(7), s.V[0])
	assert.Equal(t, byte(0), s.V[1])
	assert.Equal(t, uint16(0x202), s.PC)
	assert.True(t, r.Paused())
}

func TestRunner_Input(t *testing.T) {
	// LD V0, K; JP $200
	r := newTestRunner(t, []byte{0xF0, 0x0A, 0x12, 0x00}, true)
	assert.Equal(t, byte(chip8.NoKey), r.Snapshot().Input)

	assert.NoError(t, r.Press(0xA))
	assert.NoError(t, r.StepOnce())
	assert.Equal(t, byte(0xA), r.Snapshot().V[0])

	r.Release()
	assert.NoError(t, r.StepOnce())
	assert.NoError(t, r.StepOnce())
	assert.Equal(t, byte(chip8.NoKey), r.Snapshot().V[0])

	assert.Error(t, r.Press(chip8.KeyCount))
}
