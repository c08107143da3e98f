package disasm

import (
	"fmt"
	"io"
)

// CallGraph renders a Graphviz DOT digraph of mem's call and jump edges.
// Grounded directly on original_source/memory.py's call_graph: starting
// from starts, each routine is walked instruction by instruction up to its first
// terminator (AnnTerminator), collecting every call made along the way
// plus the direct jump the terminator itself makes, if any; callees not
// yet visited seed the next round. A seen-starts set stops the walk from
// revisiting a routine.
func CallGraph(w io.Writer, mem *Memory, starts []uint16) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}

	type edge struct {
		fromLabel, toLabel string
		dashed             bool
	}
	var edges []edge

	seen := make(map[uint16]struct{})
	frontier := append([]uint16(nil), starts...)

	for len(frontier) > 0 {
		next := make([]uint16, 0)
		nextSeen := make(map[uint16]struct{})

		for _, start := range frontier {
			if _, ok := seen[start]; ok {
				continue
			}
			seen[start] = struct{}{}

			startLabel := mem.AddrLabel(start, 4)
			addr := start
			for mem.HasAddr(addr) && !mem.AddrIs(addr, AnnTerminator) {
				if to, ok := mem.Calls()[addr]; ok {
					edges = append(edges, edge{fromLabel: startLabel, toLabel: mem.AddrLabel(to, 4), dashed: false})
					if _, ok := seen[to]; !ok {
						if _, ok := nextSeen[to]; !ok {
							nextSeen[to] = struct{}{}
							next = append(next, to)
						}
					}
				}
				instr, err := DecodeInstruction(mem, addr)
				if err != nil {
					break
				}
				addr += instr.Size()
			}

			if mem.AddrIs(addr, AnnDirectJump) {
				if to, ok := mem.Jumps()[addr]; ok {
					edges = append(edges, edge{fromLabel: startLabel, toLabel: mem.AddrLabel(to, 4), dashed: true})
					if _, ok := seen[to]; !ok {
						if _, ok := nextSeen[to]; !ok {
							nextSeen[to] = struct{}{}
							next = append(next, to)
						}
					}
				}
			}
		}

		frontier = next
	}

	for _, e := range edges {
		style := ""
		if e.dashed {
			style = " [style=dashed]"
		}
		if _, err := fmt.Fprintf(w, "\t%q -> %q%s;\n", e.fromLabel, e.toLabel, style); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
