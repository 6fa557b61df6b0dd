package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
)

// writeRegisters writes the registers, timers, the top of the stack and the
// instruction at the program counter.
func writeRegisters(w io.Writer, s *chip8.State) {
	fmt.Fprintf(w, "PC %04X  I %04X  SP %02X\n", s.PC, s.I, s.SP)
	fmt.Fprintf(w, "DT %02X    ST %02X   TOS %04X\n", s.Delay, s.Sound, s.Stack[s.SP%chip8.StackSize])

	for row := range chip8.RegisterCount / 4 {
		cells := make([]string, 0, 4)
		for column := range 4 {
			i := row*4 + column
			cells = append(cells, fmt.Sprintf("V%X %02X", i, s.V[i]))
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}

	fmt.Fprintf(w, "\n> %s\n", disasm.Line(s.PC, s.Opcode()))
}

// writeDisplay writes the display as half block text, or as braille patterns
// which fit the display into a quarter of the text rows.
func writeDisplay(w io.Writer, s *chip8.State, braille bool) {
	lines := display.TextFrame(s)
	if braille {
		lines = display.BrailleFrame(s)
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// writeKeys writes the keypad with the latched key in brackets.
func writeKeys(w io.Writer, input byte) {
	var sb strings.Builder
	for key := range byte(chip8.KeyCount) {
		label, _ := keypad.Label(key)
		if key == input {
			fmt.Fprintf(&sb, "[%c]", label)
		} else {
			fmt.Fprintf(&sb, " %c ", label)
		}

		if (key+1)%keypad.Columns == 0 {
			fmt.Fprintln(w, sb.String())
			sb.Reset()
		}
	}
	fmt.Fprintln(w, "space release  p pause  n step")
	fmt.Fprintln(w, "b braille  esc quit")
}

// writeStatus writes the run state of the machine.
func writeStatus(w io.Writer, paused bool, cycles uint64, err error) {
	state := "running"
	switch {
	case err != nil:
		state = "halted"
	case paused:
		state = "paused"
	}

	fmt.Fprintf(w, "%s, %d instructions executed\n", state, cycles)
	if err != nil {
		fmt.Fprintln(w, err.Error())
	}
}
