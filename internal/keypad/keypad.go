// Package keypad maps host keyboard keys to CHIP-8 key codes.
//
// The 16 keys are laid out as a 4x4 block on the left of a QWERTY keyboard.
// Key codes are assigned positionally, row by row:
//
//	1 2 3 4      0 1 2 3
//	q w e r  ->  4 5 6 7
//	a s d f      8 9 A B
//	z x c v      C D E F
package keypad

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Layout contains the host keys in key code order.
const Layout = "1234qwerasdfzxcv"

// Columns is the number of keys per keypad row.
const Columns = 4

// Key returns the key code for a host key. Letters are matched case insensitive.
func Key(r rune) (byte, bool) {
	r = unicode.ToLower(r)
	for i, k := range Layout {
		if k == r {
			return byte(i), true
		}
	}
	return chip8.NoKey, false
}

// Label returns the host key for a key code.
func Label(key byte) (rune, bool) {
	if int(key) >= len(Layout) {
		return 0, false
	}
	return rune(Layout[key]), true
}
