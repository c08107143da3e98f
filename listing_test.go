package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingSingleNOPAtEntry(t *testing.T) {
	f := newROMFixture(0xF000).set(0xF000, 0xEA).resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	out := Listing(mem)

	assert.Contains(t, out, "* = $F000")
	assert.Contains(t, out, "START\tNOP")
}

func TestListingBlankLineAfterJMP(t *testing.T) {
	// spec.md S4: the listing emits a blank line after the JMP.
	f := newROMFixture(0xF000).
		set(0xF000, 0x4C, 0x20, 0xF0).
		set(0xF020, 0x60).
		resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	out := Listing(mem)
	lines := strings.Split(out, "\n")

	jmpIdx := -1
	for i, l := range lines {
		if strings.Contains(l, "JMP") {
			jmpIdx = i
			break
		}
	}
	if assert.NotEqual(t, -1, jmpIdx, "expected a JMP line in %q", out) {
		assert.Equal(t, "", lines[jmpIdx+1])
	}
}

func TestListingTIAStoreRendersSymbol(t *testing.T) {
	f := newROMFixture(0xF000).
		set(0xF000, 0xA9, 0x00).
		set(0xF002, 0x85, 0x09).
		set(0xF004, 0x60).
		resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	out := Listing(mem)
	assert.Contains(t, out, "STA\tCOLUBK")
}

func TestListingCoversEveryDataByte(t *testing.T) {
	f := newROMFixture(0xF000).set(0xF000, 0xEA).resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	out := Listing(mem)
	assert.Contains(t, out, ".byt")
}
