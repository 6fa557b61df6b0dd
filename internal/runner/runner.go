// Package runner drives a CHIP-8 machine at a fixed instruction rate and
// serializes the access of host frontends to it.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Runner owns a machine and executes its instructions.
// All methods are safe for concurrent use.
type Runner struct {
	logger   *log.Logger
	interval time.Duration
	trace    bool

	mu      sync.Mutex
	machine *chip8.Machine
	paused  bool
	cycles  uint64
	err     error // first step error, halts the runner
}

// New returns a runner for the given machine configured by the program options.
func New(logger *log.Logger, machine *chip8.Machine, opts options.Program) *Runner {
	return &Runner{
		logger:   logger,
		interval: opts.StepInterval(),
		trace:    opts.Debug,
		machine:  machine,
		paused:   opts.Paused,
	}
}

// Run executes instructions at the configured rate until the context is
// canceled or a step fails. Steps are skipped while the runner is paused.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := r.tick(); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) tick() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused {
		return r.err
	}
	return r.step()
}

// StepOnce executes a single instruction regardless of the pause state.
func (r *Runner) StepOnce() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step()
}

// RunCycles executes up to n instructions without delay and returns the
// number of executed instructions.
func (r *Runner) RunCycles(n int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range n {
		if err := r.step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// step executes one instruction, the caller has to hold the lock.
func (r *Runner) step() error {
	if r.err != nil {
		return r.err
	}

	if r.trace {
		pc := r.machine.PC
		opcode := r.machine.Opcode()
		r.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", disasm.Format(opcode)))
	}

	if err := r.machine.Step(); err != nil {
		r.err = fmt.Errorf("executing instruction %d: %w", r.cycles, err)
		r.paused = true
		return r.err
	}
	r.cycles++
	return nil
}

// Pause stops the execution of instructions by Run.
func (r *Runner) Pause() {
	r.mu.Lock()
	r.paused = true
	r.mu.Unlock()
}

// Resume continues the execution of instructions by Run. A runner that was
// halted by a failed step stays halted.
func (r *Runner) Resume() {
	r.mu.Lock()
	r.paused = r.err != nil
	r.mu.Unlock()
}

// Toggle switches between the paused and running state and returns whether
// the runner is paused afterwards.
func (r *Runner) Toggle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = !r.paused || r.err != nil
	return r.paused
}

// Paused returns whether the runner is paused.
func (r *Runner) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Press latches the given key 0x0-0xF as the currently pressed key.
func (r *Runner) Press(key byte) error {
	if key >= chip8.KeyCount {
		return fmt.Errorf("invalid key %d", key)
	}
	r.mu.Lock()
	r.machine.Input = key
	r.mu.Unlock()
	return nil
}

// Release clears the input latch.
func (r *Runner) Release() {
	r.mu.Lock()
	r.machine.Input = chip8.NoKey
	r.mu.Unlock()
}

// Snapshot returns a copy of the machine state.
func (r *Runner) Snapshot() chip8.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Snapshot()
}

// Cycles returns the number of successfully executed instructions.
func (r *Runner) Cycles() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles
}

// Err returns the error that halted the runner, if any.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
