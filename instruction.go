package disasm

// Instruction is the value produced by decoding a single opcode at a
// specific address: the looked-up Opcode plus its two operands. Purely
// value data, no back-pointer to the memory it was decoded from
// (spec.md §3).
type Instruction struct {
	Opcode Opcode
	Src    Operand
	Dst    Operand
}

// Size is the total instruction length in bytes, including the opcode byte.
func (i Instruction) Size() uint16 {
	return uint16(i.Opcode.Size)
}

// DecodeInstruction decodes the instruction at addr, producing typed
// operands for whichever of src/dst actually carries a value, per
// spec.md §4.1's "at most one data-bearing operand" invariant.
func DecodeInstruction(mem *Memory, addr uint16) (Instruction, error) {
	op, err := Decode(mem.byteAt(addr), addr)
	if err != nil {
		return Instruction{}, err
	}

	src := operandFor(op.Src, mem, addr)
	dst := operandFor(op.Dst, mem, addr)

	return Instruction{Opcode: op, Src: src, Dst: dst}, nil
}

// operandFor builds the Operand value for one side (src or dst) of an
// opcode, reading whatever trailing bytes that addressing mode consumes.
// Both sides are built independently; only the data-bearing side actually
// reads any bytes, the other resolves to a zero-size register/flag operand.
func operandFor(mode AddressingMode, mem *Memory, addr uint16) Operand {
	switch {
	case isAddrBearing16(mode):
		return NewAddrOperand(mode, mem.GetWord(addr+1))
	case mode == ModeImm:
		return NewImmOperand(mem.byteAt(addr + 1))
	case mode == ModeIndX, mode == ModeIndY:
		return NewIndOperand(mode, mem.byteAt(addr+1))
	case mode == ModeRel:
		return NewRelOperand(mem.byteAt(addr + 1))
	case mode == ModeZero, mode == ModeZeroX, mode == ModeZeroY:
		return NewZeroOperand(mode, mem.byteAt(addr+1))
	default:
		return NewRegisterOperand(mode)
	}
}
