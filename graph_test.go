package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallGraphRendersCallEdge(t *testing.T) {
	f := newROMFixture(0xF000).
		set(0xF000, 0x20, 0x10, 0xF0). // JSR $F010
		set(0xF003, 0x60).             // RTS
		set(0xF010, 0x60).             // RTS
		resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	var b strings.Builder
	require.NoError(t, CallGraph(&b, mem, []uint16{0xF000}))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, `"START" -> "LF010"`)
	assert.NotContains(t, out, "style=dashed")
}

func TestCallGraphRendersJumpEdgeDashed(t *testing.T) {
	f := newROMFixture(0xF000).
		set(0xF000, 0x4C, 0x20, 0xF0). // JMP $F020
		set(0xF020, 0x60).
		resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	var b strings.Builder
	require.NoError(t, CallGraph(&b, mem, []uint16{0xF000}))
	out := b.String()

	assert.Contains(t, out, `"START" -> "LF020" [style=dashed]`)
}

func TestCallGraphIndirectJMPHasNoEdge(t *testing.T) {
	f := newROMFixture(0xF000).
		set(0xF000, 0x6C, 0xA2, 0x00).
		resetVector(0xF000)
	mem := f.memory()
	mem.AddSymbol(0xF000, "START")
	TraceCode(mem, []uint16{0xF000})

	var b strings.Builder
	require.NoError(t, CallGraph(&b, mem, []uint16{0xF000}))
	out := b.String()

	assert.Equal(t, "digraph G {\n}\n", out)
}
