// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ROM is a program image as read from disk.
type ROM struct {
	Name string // file name without directory and extension
	Data []byte
}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file. The file content is not transformed in any way,
// it is only checked to fit into the program memory of the machine.
func (l *Loader) Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	rom, err := l.LoadFromBytes(name, data)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return rom, nil
}

// LoadFromBytes creates a ROM from an in-memory program image.
func (l *Loader) LoadFromBytes(name string, data []byte) (*ROM, error) {
	if len(data) > chip8.MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes",
			chip8.ErrROMTooLarge, len(data), chip8.MaxROMSize)
	}
	return &ROM{
		Name: name,
		Data: data,
	}, nil
}
