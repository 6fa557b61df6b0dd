package chip8

// Memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// MaxROMSize is the largest program that fits between ProgramStart and MaxAddress.
	MaxROMSize = MemorySize - ProgramStart

	addressMask = MaxAddress
)

// Register and stack constants.
const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, overwritten as a carry, borrow or collision flag.
	FlagRegister = 0xF

	// StackSize is the number of return addresses the call stack holds.
	StackSize = 16

	stackMask = StackSize - 1
)

// Display constants.
const (
	// Width is the display width in pixels.
	Width = 64

	// Height is the display height in pixels.
	Height = 32

	// BytesPerRow is the number of packed display bytes per pixel row.
	BytesPerRow = Width / 8

	// DisplaySize is the size of the packed display buffer in bytes.
	DisplaySize = BytesPerRow * Height
)

// Input constants.
const (
	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// NoKey is the input latch value when no key is pressed.
	NoKey = 0xFF
)

// FontGlyphSize is the number of bytes, one per row, of a built-in font glyph.
const FontGlyphSize = 5

// Font contains the glyphs for the hexadecimal digits 0-F. Each glyph is 4 pixels wide,
// stored in the high nibble of each of its 5 rows. It is loaded at address 0.
var Font = [KeyCount * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
