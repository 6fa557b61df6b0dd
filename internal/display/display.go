// Package display converts the packed CHIP-8 display buffer into formats
// that host frontends can present.
package display

import (
	"image"
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Block characters combining two vertically stacked pixels.
const (
	blockEmpty = ' '
	blockUpper = '▀'
	blockLower = '▄'
	blockFull  = '█'
)

// Colors used for the image conversion.
var (
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Background = color.RGBA{A: 0xFF}
)

// TextFrame renders the display as text lines using half block characters,
// every line combines two pixel rows.
func TextFrame(s *chip8.State) []string {
	lines := make([]string, 0, chip8.Height/2)
	var sb strings.Builder

	for y := 0; y < chip8.Height; y += 2 {
		sb.Reset()
		for x := range chip8.Width {
			upper := s.Pixel(x, y)
			lower := s.Pixel(x, y+1)

			switch {
			case upper && lower:
				sb.WriteRune(blockFull)
			case upper:
				sb.WriteRune(blockUpper)
			case lower:
				sb.WriteRune(blockLower)
			default:
				sb.WriteRune(blockEmpty)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// BrailleFrame renders the display as text lines using braille patterns,
// every character combines a 2x4 pixel block.
func BrailleFrame(s *chip8.State) []string {
	// braille dot bits indexed by [row][column] inside a 2x4 cell
	dots := [4][2]rune{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	lines := make([]string, 0, chip8.Height/4)
	var sb strings.Builder

	for y := 0; y < chip8.Height; y += 4 {
		sb.Reset()
		for x := 0; x < chip8.Width; x += 2 {
			cell := rune(0x2800)
			for row := range 4 {
				for column := range 2 {
					if s.Pixel(x+column, y+row) {
						cell |= dots[row][column]
					}
				}
			}
			sb.WriteRune(cell)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// RGBA converts the display into a Width x Height image.
func RGBA(s *chip8.State) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, chip8.Width, chip8.Height))
	for y := range chip8.Height {
		for x := range chip8.Width {
			if s.Pixel(x, y) {
				img.SetRGBA(x, y, Foreground)
			} else {
				img.SetRGBA(x, y, Background)
			}
		}
	}
	return img
}
