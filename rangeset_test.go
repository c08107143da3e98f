package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeSetContains(t *testing.T) {
	rs := NewRangeSet()
	rs.Add(0xF000, 0xF010)

	assert.True(t, rs.Contains(0xF000))
	assert.True(t, rs.Contains(0xF010))
	assert.False(t, rs.Contains(0xF011))
}

func TestRangeSetExtendsInPlace(t *testing.T) {
	rs := NewRangeSet()
	rs.Add(0xF000, 0xF010)
	rs.Add(0xF005, 0xF020)

	ivs := rs.Intervals()
	if assert.Len(t, ivs, 1) {
		assert.Equal(t, uint16(0xF000), ivs[0].Start)
		assert.Equal(t, uint16(0xF020), ivs[0].End)
	}
}

func TestRangeSetInteriorAddIsNoop(t *testing.T) {
	// spec.md §8 boundary behavior: add(range) strictly inside an existing
	// interval is a no-op.
	rs := NewRangeSet()
	rs.Add(0xF000, 0xF020)
	rs.Add(0xF005, 0xF010)

	ivs := rs.Intervals()
	if assert.Len(t, ivs, 1) {
		assert.Equal(t, uint16(0xF000), ivs[0].Start)
		assert.Equal(t, uint16(0xF020), ivs[0].End)
	}
}

func TestRangeSetNonTransitiveMerge(t *testing.T) {
	// spec.md §9 Open Question: two disjoint intervals followed by a
	// bridging interval extend the first matching interval in place rather
	// than coalescing all three into one.
	rs := NewRangeSet()
	rs.Add(0xF000, 0xF010)
	rs.Add(0xF020, 0xF030)
	rs.Add(0xF008, 0xF028)

	ivs := rs.Intervals()
	if assert.Len(t, ivs, 2) {
		assert.Equal(t, uint16(0xF000), ivs[0].Start)
		assert.Equal(t, uint16(0xF028), ivs[0].End)
		assert.Equal(t, uint16(0xF020), ivs[1].Start)
		assert.Equal(t, uint16(0xF030), ivs[1].End)
	}
	assert.True(t, rs.Contains(0xF029))
}

func TestRangeSetDisjointRangesAppend(t *testing.T) {
	rs := NewRangeSet()
	rs.Add(0xF000, 0xF000)
	rs.Add(0xF020, 0xF020)

	assert.Len(t, rs.Intervals(), 2)
	assert.True(t, rs.Contains(0xF000))
	assert.True(t, rs.Contains(0xF020))
	assert.False(t, rs.Contains(0xF010))
}
