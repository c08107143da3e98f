package disasm

// interval is an inclusive [start, end] range of 16-bit addresses.
type interval struct {
	start, end uint16
}

// RangeSet is an unordered collection of inclusive address intervals
// (spec.md §3/§4.3). Grounded directly on original_source/memory.py's
// Ranges class: Add does a single linear scan and extends the first
// matching interval in place rather than fully coalescing, preserving the
// non-transitive merge behavior spec.md §9 says to keep as-is.
type RangeSet struct {
	ranges []interval
}

// NewRangeSet returns an empty range set.
func NewRangeSet() *RangeSet {
	return &RangeSet{}
}

// Add inserts [start, end], extending the first interval whose containment
// test matches before appending a new one. Ties are broken in favor of the
// interval containing start over one containing end, matching the
// if/elif order in original_source/memory.py's Ranges.add.
func (r *RangeSet) Add(start, end uint16) {
	for i, iv := range r.ranges {
		if start >= iv.start && start <= iv.end {
			if end > iv.end {
				r.ranges[i].end = end
			}
			return
		}
		if end >= iv.start && end <= iv.end {
			r.ranges[i].start = start
			return
		}
	}
	r.ranges = append(r.ranges, interval{start: start, end: end})
}

// Contains reports whether addr falls in any recorded interval. O(n) in the
// number of intervals, per spec.md §3.
func (r *RangeSet) Contains(addr uint16) bool {
	for _, iv := range r.ranges {
		if addr >= iv.start && addr <= iv.end {
			return true
		}
	}
	return false
}

// Intervals returns the recorded intervals in insertion order, for callers
// that need to iterate (e.g. test assertions through
// Memory.ExecutableRanges).
func (r *RangeSet) Intervals() []struct{ Start, End uint16 } {
	out := make([]struct{ Start, End uint16 }, len(r.ranges))
	for i, iv := range r.ranges {
		out[i] = struct{ Start, End uint16 }{Start: iv.start, End: iv.end}
	}
	return out
}
