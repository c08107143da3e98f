package disasm

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// MemoryMapString renders the ASCII memory-use map (spec.md §4.4): one
// character per address, grouped in lines of width, each line prefixed by
// its starting address. Grounded on original_source/memory.py's
// to_string, including its ordering-dependent rule 9 fallback.
func MemoryMapString(mem *Memory, width int) string {
	var b strings.Builder

	start := mem.Start()
	end := mem.End()
	prev := byte(' ')

	for addr := uint32(start); addr < end; addr++ {
		if (addr-uint32(start))%uint32(width) == 0 {
			if addr != uint32(start) {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%04X: ", addr)
		}
		c := mapChar(mem, uint16(addr), prev)
		b.WriteByte(c)
		prev = c
	}
	b.WriteString("\n")
	return b.String()
}

// mapChar picks the highest-priority character for addr per spec.md §4.4's
// nine-rule table.
func mapChar(mem *Memory, addr uint16, prev byte) byte {
	switch {
	case mem.AddrIs(addr, AnnJumpTarget):
		return '['
	case mem.AddrIs(addr, AnnTerminator):
		if mem.AddrIs(addr, AnnTarget) {
			return 'T'
		}
		return ']'
	case mem.AddrIs(addr, AnnBranch):
		return '/'
	case mem.AddrIs(addr, AnnTarget):
		return '\\'
	case mem.AddrIs(addr, AnnRead) && mem.AddrIs(addr, AnnWrite):
		return '*'
	case mem.AddrIs(addr, AnnRead):
		return 'r'
	case mem.AddrIs(addr, AnnWrite):
		return 'w'
	case mem.IsExecutable(addr):
		return '.'
	default:
		switch prev {
		case ']', 'T', ' ', 'r', 'w':
			return ' '
		default:
			return '#'
		}
	}
}

// MemoryMapImage renders the same annotation data as an in-memory RGBA
// bitmap, one pixel per address, width pixels wide. It does not encode the
// image to PPM or any other file format. Neither DOT nor PPM has a
// library anywhere in the retrieved corpus (see DESIGN.md), so this uses
// only the standard image package.
func MemoryMapImage(mem *Memory, width int) *image.RGBA {
	start := mem.Start()
	end := mem.End()
	total := int(end) - int(start)
	height := (total + width - 1) / width
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	prev := byte(' ')
	for addr := uint32(start); addr < end; addr++ {
		c := mapChar(mem, uint16(addr), prev)
		prev = c
		i := int(addr - uint32(start))
		x := i % width
		y := i / width
		img.Set(x, y, mapColor(c))
	}
	return img
}

// mapColor assigns a distinguishable RGB color to each memory-map
// character, grouped by the kind of annotation it represents.
func mapColor(c byte) color.RGBA {
	switch c {
	case '[':
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case ']':
		return color.RGBA{R: 200, G: 0, B: 0, A: 255}
	case 'T':
		return color.RGBA{R: 255, G: 140, B: 0, A: 255}
	case '/':
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case '\\':
		return color.RGBA{R: 180, G: 180, B: 0, A: 255}
	case '*':
		return color.RGBA{R: 0, G: 200, B: 200, A: 255}
	case 'r':
		return color.RGBA{R: 0, G: 120, B: 255, A: 255}
	case 'w':
		return color.RGBA{R: 0, G: 200, B: 0, A: 255}
	case '.':
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	case '#':
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	default: // space
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
}
