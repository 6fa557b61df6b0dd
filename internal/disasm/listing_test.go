package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestProgram(t *testing.T) {
	data := []byte{
		0x60, 0x01, // 0200 ld V0, $01
		0x22, 0x08, // 0202 call $208
		0x12, 0x02, // 0204 jp $202
		0x13, 0x00, // 0206 jp $300, outside of the program
		0x00, 0xEE, // 0208 ret
		0xFF, 0xFF, // 020A unknown
		0x01, // 020C trailing byte
	}

	expected := []string{
		"0200: 6001  ld V0, $01",
		"_label_0202:",
		"0202: 2208  call _func_0208",
		"0204: 1202  jp _label_0202",
		"0206: 1300  jp $300",
		"_func_0208:",
		"0208: 00EE  ret",
		"020A: FFFF  dw $FFFF",
		"020C: 01    db $01",
	}
	assert.Equal(t, expected, Program(0x200, data))
}

func TestProgram_JumpIntoInstruction(t *testing.T) {
	data := []byte{
		0x12, 0x03, // 0200 jp $203
		0x60, 0x00, // 0202 ld V0, $00
	}

	expected := []string{
		"0200: 1203  jp _label_0203",
		"0202: 6000  ld V0, $00 ; branch into instruction detected: _label_0203",
	}
	assert.Equal(t, expected, Program(0x200, data))
}

func TestProgram_SkipWithLastNibble(t *testing.T) {
	assert.Equal(t, []string{"0200: 5127  se V1, V2"}, Program(0x200, []byte{0x51, 0x27}))
}

func TestProgram_Empty(t *testing.T) {
	assert.Empty(t, Program(0x200, nil))
}
