// Package chip8 implements the CHIP-8 virtual machine: its memory, registers, call
// stack and monochrome display, and the fetch-decode-execute cycle that advances it.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x04F: built-in hexadecimal font, 16 glyphs of 5 bytes each
//   - 0x050-0x1FF: reserved interpreter area
//   - ProgramStart-MaxAddress: program and data area, at most MaxROMSize bytes
//
// # Display
//
// The 64x32 display is stored packed, 8 pixels per byte and 8 bytes per row. The most
// significant bit of a byte is its leftmost pixel. Sprites are XOR-composited one byte
// per row and the X coordinate is snapped to a byte boundary, so sprites only render at
// their exact position when VX is a multiple of 8.
//
// # Instruction Semantics
//
// The interpreter reproduces a specific CHIP-8 dialect rather than the canonical one:
//   - 8XY0 adds VY to VX instead of copying it
//   - 8XY6 and 8XYE set VF to VX OR 1 and VX OR 8 instead of the shifted out bit
//   - FX0A reads the input latch without waiting for a key press
//   - BNNN continues 2 bytes past V0+NNN
//   - RET on an empty stack wraps the stack pointer to 0xFF
//
// # Usage Example
//
//	m, err := chip8.New(rom)
//	if err != nil {
//		return fmt.Errorf("creating machine: %w", err)
//	}
//	for {
//		m.Input = pressedKey()
//		if err := m.Step(); err != nil {
//			return err
//		}
//		render(m.Display)
//	}
//
// The machine is not safe for concurrent use. A host that renders or polls input from
// another goroutine has to serialize access itself.
package chip8
