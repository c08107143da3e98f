package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryMapMarkerPriority(t *testing.T) {
	mem := NewMemory(make([]byte, 16), 0xF000, nil)
	mem.AddExecutableRange(0xF000, 0xF00F)

	mem.Annotate(0xF001, AnnRead)
	mem.Annotate(0xF001, AnnWrite)
	mem.Annotate(0xF002, AnnRead)
	mem.Annotate(0xF003, AnnWrite)
	mem.Annotate(0xF004, AnnBranch)
	mem.Annotate(0xF005, AnnTarget)
	mem.Annotate(0xF006, AnnTerminator)
	mem.Annotate(0xF007, AnnTerminator)
	mem.Annotate(0xF007, AnnTarget)
	mem.Annotate(0xF008, AnnJumpTarget)

	out := MemoryMapString(mem, 16)
	line := strings.TrimPrefix(strings.Split(out, "\n")[0], "F000: ")

	assert.Equal(t, byte('.'), line[0])
	assert.Equal(t, byte('*'), line[1])
	assert.Equal(t, byte('r'), line[2])
	assert.Equal(t, byte('w'), line[3])
	assert.Equal(t, byte('/'), line[4])
	assert.Equal(t, byte('\\'), line[5])
	assert.Equal(t, byte(']'), line[6])
	assert.Equal(t, byte('T'), line[7])
	assert.Equal(t, byte('['), line[8])
}

func TestMemoryMapRule9PoundFlagsSuspiciousRunoff(t *testing.T) {
	mem := NewMemory(make([]byte, 4), 0xF000, nil)
	mem.AddExecutableRange(0xF000, 0xF000)
	// F000 executable ('.'), F001-F003 unannotated and non-executable: once
	// the char after '.' falls outside the rule-9 pass-through set, every
	// following unannotated address keeps rendering '#' too, since '#'
	// itself is not in the pass-through set either.

	out := MemoryMapString(mem, 4)
	line := strings.TrimPrefix(strings.TrimSuffix(out, "\n"), "F000: ")

	assert.Equal(t, "."+"#"+"#"+"#", line)
}

func TestMemoryMapLineWrapping(t *testing.T) {
	mem := NewMemory(make([]byte, 20), 0xF000, nil)
	out := MemoryMapString(mem, 8)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "F000: "))
	assert.True(t, strings.HasPrefix(lines[1], "F008: "))
}
