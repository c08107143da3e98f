package disasm

// TraceCode performs recursive-descent code discovery from starts, an
// explicit worklist/frontier fixed-point computation (spec.md §4.5/§5,
// §9 Design Notes: recursion is deliberately avoided in favor of a queue).
// It mutates mem's annotations, executable ranges, and call/jump maps.
func TraceCode(mem *Memory, starts []uint16) {
	seen := make(map[uint16]struct{})
	frontier := append([]uint16(nil), starts...)

	for len(frontier) > 0 {
		next := make([]uint16, 0)
		nextSeen := make(map[uint16]struct{})

		for _, s := range frontier {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}

			addr := s
			for mem.HasAddr(addr) && uint32(addr) < mem.End() {
				instr, err := DecodeInstruction(mem, addr)
				if err != nil {
					// A decode failure while tracing means the tracer has
					// wandered into data; per spec.md §7 this is fatal and
					// bubbles to the driver, never caught here.
					panic(err)
				}

				recordOperandEffects(mem, addr, instr)
				terminate, seed := classifyControlFlow(mem, addr, instr)
				if seed != nil {
					t := *seed
					if mem.HasAddr(t) {
						if _, ok := seen[t]; !ok {
							if _, ok := nextSeen[t]; !ok {
								nextSeen[t] = struct{}{}
								next = append(next, t)
							}
						}
					}
				}
				if terminate {
					break
				}
				addr += instr.Size()
			}

			mem.AddExecutableRange(s, addr)
		}

		frontier = next
	}
}

// recordOperandEffects applies the per-instruction read/write annotations
// that fire unconditionally ahead of any control-flow classification,
// matching original_source/memory.py's trace_code (two bare `if`
// statements before the branch/jump elif-chain) — see DESIGN.md for why
// this includes zero-page modes.
func recordOperandEffects(mem *Memory, _ uint16, instr Instruction) {
	if op, ok := instr.Src.(AddrOperand); ok && isMemoryOperand(op.Mode) {
		mem.Annotate(op.Addr, AnnRead)
	}
	if op, ok := instr.Src.(ZeroOperand); ok && isMemoryOperand(op.Mode) {
		mem.Annotate(uint16(op.Addr), AnnRead)
	}
	if op, ok := instr.Dst.(AddrOperand); ok && isMemoryOperand(op.Mode) {
		mem.Annotate(op.Addr, AnnWrite)
	}
	if op, ok := instr.Dst.(ZeroOperand); ok && isMemoryOperand(op.Mode) {
		mem.Annotate(uint16(op.Addr), AnnWrite)
	}
}

// classifyControlFlow applies the branch/call/jump/return rules of
// spec.md §4.5, returning whether the current block terminates and, if a
// new address was discovered, a pointer to it to seed next.
func classifyControlFlow(mem *Memory, addr uint16, instr Instruction) (terminate bool, seed *uint16) {
	if branchMnemonics[instr.Opcode.Mnemonic] {
		rel, ok := instr.Src.(RelOperand)
		if !ok {
			return false, nil
		}
		mem.Annotate(addr, AnnBranch)
		target := rel.Target(addr)
		mem.Annotate(target, AnnTarget)
		return false, &target
	}

	switch instr.Opcode.Mnemonic {
	case "RTS", "RTI":
		mem.Annotate(addr, AnnTerminator)
		return true, nil
	case "BRK":
		// Control passes through the IRQ vector, not to the next byte.
		return true, nil
	case "JSR":
		addrOp, ok := instr.Src.(AddrOperand)
		if !ok {
			return true, nil
		}
		mem.Annotate(addrOp.Addr, AnnJumpTarget)
		mem.AddCall(addr, addrOp.Addr)
		target := addrOp.Addr
		return false, &target
	case "JMP":
		mem.Annotate(addr, AnnTerminator)
		if instr.Opcode.Src == ModeAInd {
			// Indirect jump: target unknown, terminate with no new seed.
			return true, nil
		}
		addrOp, ok := instr.Src.(AddrOperand)
		if !ok {
			return true, nil
		}
		mem.Annotate(addr, AnnDirectJump)
		mem.Annotate(addrOp.Addr, AnnJumpTarget)
		mem.AddJump(addr, addrOp.Addr)
		target := addrOp.Addr
		return true, &target
	default:
		return false, nil
	}
}
