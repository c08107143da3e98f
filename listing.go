package disasm

import (
	"fmt"
	"sort"
	"strings"
)

// dataRunWidth is the number of bytes per .byt line, matching
// original_source/memory.py's dis() data loop.
const dataRunWidth = 17

// Listing renders a full reassemblable textual listing of mem
// (spec.md §4.5 Formatter): a symbol preamble, an origin directive, then
// alternating runs of decoded instructions and raw .byt/.word data.
func Listing(mem *Memory) string {
	var b strings.Builder

	writePreamble(&b, mem)

	fmt.Fprintf(&b, "\t* = $%04X\n", mem.Start())
	b.WriteString("\tcode\n\n")

	addr := mem.Start()
	end := mem.End()
	for uint32(addr) < end {
		var next uint16
		if mem.IsExecutable(addr) {
			next = writeCodeRun(&b, mem, addr, end)
		} else {
			next = writeDataRun(&b, mem, addr, end)
		}
		if next <= addr {
			// The cursor wrapped past $FFFF: the image ends at $10000.
			break
		}
		addr = next
	}

	return b.String()
}

// writePreamble emits symbol-equate lines for every symbol whose address
// falls below the ROM's origin, sorted by address for reproducibility.
func writePreamble(b *strings.Builder, mem *Memory) {
	addrs := make([]uint16, 0)
	for addr := range mem.Symbols() {
		if addr < mem.Start() {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	for _, addr := range addrs {
		fmt.Fprintf(b, "%s\t= $%02X\n", mem.Symbols()[addr], addr)
	}
	if len(addrs) > 0 {
		b.WriteString("\n")
	}
}

// writeCodeRun emits one decoded instruction line at addr, returning the
// address just past it. A blank line follows any RTS/RTI/JMP to set the next
// routine visually apart, matching the teacher's listing shape.
func writeCodeRun(b *strings.Builder, mem *Memory, addr uint16, end uint32) uint16 {
	instr, err := DecodeInstruction(mem, addr)
	if err != nil {
		// The tracer proved this run executable, but the byte at addr is
		// not in the opcode table (e.g. the cursor landed inside another
		// instruction). Emit that byte as data instead of propagating,
		// since the listing must still cover every byte.
		fmt.Fprintf(b, "\t.byt\t$%02X\n", mem.byteAt(addr))
		return addr + 1
	}

	label := ""
	if name, ok := mem.Symbols()[addr]; ok {
		label = name
	} else if mem.AddrIs(addr, AnnTarget) || mem.AddrIs(addr, AnnJumpTarget) {
		label = fmt.Sprintf("L%04X", addr)
	}

	operand := operandColumn(mem, addr, instr)

	line := fmt.Sprintf("%s\t%s", label, instr.Opcode.Mnemonic)
	if operand != "" {
		line += "\t" + operand
	}
	b.WriteString(line)
	b.WriteString("\n")

	next := addr + instr.Size()
	switch instr.Opcode.Mnemonic {
	case "RTS", "RTI", "JMP":
		b.WriteString("\n")
	}
	return next
}

// operandColumn implements spec.md §4.5's operand rendering rule: render
// src first; if that's empty, fall back to dst. A register/flag operand
// used as src always renders empty regardless of which register it names
// (grounded on original_source/operands.py, where every such class either
// has no __str__ override or, for the accumulator, an explicit one that
// differs from its __repr__). The accumulator's "A" only ever shows up via
// the dst fallback, and only for the fixed addressedMnemonics set (e.g.
// "ASL A"); every other register/flag dst renders empty there too.
func operandColumn(mem *Memory, addr uint16, instr Instruction) string {
	if _, isRegister := instr.Src.(RegisterOperand); !isRegister {
		if s := instr.Src.Render(addr, mem); s != "" {
			return s
		}
	}

	if addressedMnemonics[instr.Opcode.Mnemonic] {
		return instr.Dst.Render(addr, mem)
	}
	if _, isRegister := instr.Dst.(RegisterOperand); isRegister {
		return ""
	}
	return instr.Dst.Render(addr, mem)
}

// writeDataRun emits raw bytes starting at addr as .byt/.word directives
// until the next executable address (or the image end). Grounded line for
// line on original_source/memory.py's dis() data loop: a byte carrying a
// read or write annotation always starts its own labeled .byt line
// (closing whatever plain run preceded it), while unannotated bytes wrap a
// plain .byt line every dataRunWidth bytes. A byte marking a declared
// pointer word (AnnCodeRef) interrupts either kind of run with a .word
// directive naming the pointer's target.
func writeDataRun(b *strings.Builder, mem *Memory, addr uint16, end uint32) uint16 {
	bytesOnLine := 0
	lineOpen := false

	closeLine := func() {
		if lineOpen {
			b.WriteString("\n")
			lineOpen = false
		}
		bytesOnLine = 0
	}

	for uint32(addr) < end && !mem.IsExecutable(addr) {
		if mem.AddrIs(addr, AnnCodeRef) && uint32(addr)+1 < end {
			closeLine()
			word := mem.GetWord(addr)
			fmt.Fprintf(b, "L%04X\t.word\t%s\n", addr, mem.AddrLabel(word, 4))
			addr += 2
			continue
		}

		v, ok := mem.ByteAt(addr)
		if !ok {
			break
		}

		if mem.AddrIs(addr, AnnRead) || mem.AddrIs(addr, AnnWrite) {
			closeLine()
			fmt.Fprintf(b, "L%04X\t.byt\t$%02X", addr, v)
			lineOpen = true
			bytesOnLine = 1
		} else {
			if bytesOnLine >= dataRunWidth {
				closeLine()
			}
			if bytesOnLine == 0 {
				fmt.Fprintf(b, "\t.byt\t$%02X", v)
				lineOpen = true
			} else {
				fmt.Fprintf(b, ",$%02X", v)
			}
			bytesOnLine++
		}
		addr++
	}
	closeLine()
	return addr
}
