package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x02}
		tmpFile := createTempFile(t, "pong.ch8", data)

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.NotNil(t, rom)
		assert.Equal(t, "pong", rom.Name)
		assert.Equal(t, data, rom.Data)
	})

	t.Run("file without extension", func(t *testing.T) {
		tmpFile := createTempFile(t, "maze", []byte{0x00, 0xE0})

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, "maze", rom.Name)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on too large file", func(t *testing.T) {
		tmpFile := createTempFile(t, "large.ch8", make([]byte, chip8.MaxROMSize+1))

		_, err := New().Load(tmpFile)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
		assert.ErrorContains(t, err, "large.ch8")
	})
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"maximum size", chip8.MaxROMSize, false},
		{"too large", chip8.MaxROMSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom, err := New().LoadFromBytes("test", make([]byte, tt.size))
			if tt.wantErr {
				assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
				assert.True(t, rom == nil)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, rom.Data, tt.size)
		})
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
