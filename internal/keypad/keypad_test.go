package keypad

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		key   byte
		found bool
	}{
		{"first key", '1', 0x0, true},
		{"end of first row", '4', 0x3, true},
		{"start of second row", 'q', 0x4, true},
		{"upper case", 'Q', 0x4, true},
		{"middle", 's', 0x9, true},
		{"last key", 'v', 0xF, true},
		{"unmapped digit", '5', chip8.NoKey, false},
		{"unmapped letter", 'p', chip8.NoKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Key(tt.r)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestLabel(t *testing.T) {
	for i := range chip8.KeyCount {
		label, ok := Label(byte(i))
		assert.True(t, ok)

		key, ok := Key(label)
		assert.True(t, ok)
		assert.Equal(t, byte(i), key)
	}

	_, ok := Label(chip8.NoKey)
	assert.False(t, ok)
}
