package disasm

// Opcode is (mnemonic, src-mode, dst-mode, cycles, size). Size is derived,
// never authored directly (spec.md §3/§4.2).
type Opcode struct {
	Value    byte
	Mnemonic string
	Src      AddressingMode
	Dst      AddressingMode
	Cycles   int
	Size     int
}

// Op builds an Opcode and derives Size from the addressing modes, per the
// invariant in spec.md §4.2: both modes must independently agree on size,
// so the derivation only needs to look at whichever of src/dst is not None.
func Op(value byte, mnemonic string, src, dst AddressingMode, cycles int) Opcode {
	size := 1
	if isAddrBearing16(src) || isAddrBearing16(dst) {
		size = 3
	} else if isOperandBearing8(src) || isOperandBearing8(dst) {
		size = 2
	}
	return Opcode{Value: value, Mnemonic: mnemonic, Src: src, Dst: dst, Cycles: cycles, Size: size}
}

// OpcodeTable is the static 256-entry sparse dictionary, keyed by opcode
// byte. Documented MOS 6502 opcodes only; anything absent is a decode
// failure (spec.md §4.2).
var OpcodeTable = buildOpcodeTable()

func buildOpcodeTable() map[byte]Opcode {
	ops := []Opcode{
		// ADC
		Op(0x69, "ADC", ModeImm, ModeAC, 2),
		Op(0x65, "ADC", ModeZero, ModeAC, 3),
		Op(0x75, "ADC", ModeZeroX, ModeAC, 4),
		Op(0x6D, "ADC", ModeAddr, ModeAC, 4),
		Op(0x7D, "ADC", ModeAbsX, ModeAC, 4),
		Op(0x79, "ADC", ModeAbsY, ModeAC, 4),
		Op(0x61, "ADC", ModeIndX, ModeAC, 6),
		Op(0x71, "ADC", ModeIndY, ModeAC, 5),

		// AND
		Op(0x29, "AND", ModeImm, ModeAC, 2),
		Op(0x25, "AND", ModeZero, ModeAC, 3),
		Op(0x35, "AND", ModeZeroX, ModeAC, 4),
		Op(0x2D, "AND", ModeAddr, ModeAC, 4),
		Op(0x3D, "AND", ModeAbsX, ModeAC, 4),
		Op(0x39, "AND", ModeAbsY, ModeAC, 4),
		Op(0x21, "AND", ModeIndX, ModeAC, 6),
		Op(0x31, "AND", ModeIndY, ModeAC, 5),

		// ASL
		Op(0x0A, "ASL", ModeAC, ModeAC, 2),
		Op(0x06, "ASL", ModeZero, ModeZero, 5),
		Op(0x16, "ASL", ModeZeroX, ModeZeroX, 6),
		Op(0x0E, "ASL", ModeAddr, ModeAddr, 6),
		Op(0x1E, "ASL", ModeAbsX, ModeAbsX, 7),

		// BIT
		Op(0x24, "BIT", ModeZero, ModeAC, 3),
		Op(0x2C, "BIT", ModeAddr, ModeAC, 4),

		// Branches (all REL src, no dst)
		Op(0x10, "BPL", ModeRel, ModeNone, 2),
		Op(0x30, "BMI", ModeRel, ModeNone, 2),
		Op(0x50, "BVC", ModeRel, ModeNone, 2),
		Op(0x70, "BVS", ModeRel, ModeNone, 2),
		Op(0x90, "BCC", ModeRel, ModeNone, 2),
		Op(0xB0, "BCS", ModeRel, ModeNone, 2),
		Op(0xD0, "BNE", ModeRel, ModeNone, 2),
		Op(0xF0, "BEQ", ModeRel, ModeNone, 2),

		Op(0x00, "BRK", ModeNone, ModeNone, 7),

		// CMP
		Op(0xC9, "CMP", ModeImm, ModeAC, 2),
		Op(0xC5, "CMP", ModeZero, ModeAC, 3),
		Op(0xD5, "CMP", ModeZeroX, ModeAC, 4),
		Op(0xCD, "CMP", ModeAddr, ModeAC, 4),
		Op(0xDD, "CMP", ModeAbsX, ModeAC, 4),
		Op(0xD9, "CMP", ModeAbsY, ModeAC, 4),
		Op(0xC1, "CMP", ModeIndX, ModeAC, 6),
		Op(0xD1, "CMP", ModeIndY, ModeAC, 5),

		// CPX / CPY
		Op(0xE0, "CPX", ModeImm, ModeXR, 2),
		Op(0xE4, "CPX", ModeZero, ModeXR, 3),
		Op(0xEC, "CPX", ModeAddr, ModeXR, 4),
		Op(0xC0, "CPY", ModeImm, ModeYR, 2),
		Op(0xC4, "CPY", ModeZero, ModeYR, 3),
		Op(0xCC, "CPY", ModeAddr, ModeYR, 4),

		// DEC
		Op(0xC6, "DEC", ModeZero, ModeZero, 5),
		Op(0xD6, "DEC", ModeZeroX, ModeZeroX, 6),
		Op(0xCE, "DEC", ModeAddr, ModeAddr, 6),
		Op(0xDE, "DEC", ModeAbsX, ModeAbsX, 7),

		// EOR
		Op(0x49, "EOR", ModeImm, ModeAC, 2),
		Op(0x45, "EOR", ModeZero, ModeAC, 3),
		Op(0x55, "EOR", ModeZeroX, ModeAC, 4),
		Op(0x4D, "EOR", ModeAddr, ModeAC, 4),
		Op(0x5D, "EOR", ModeAbsX, ModeAC, 4),
		Op(0x59, "EOR", ModeAbsY, ModeAC, 4),
		Op(0x41, "EOR", ModeIndX, ModeAC, 6),
		Op(0x51, "EOR", ModeIndY, ModeAC, 5),

		// Flag instructions. Implied-operand; the mnemonic already names the
		// flag (the FC/FD/FI/FV modes are not used by any entry in this
		// table).
		Op(0x18, "CLC", ModeNone, ModeNone, 2),
		Op(0x38, "SEC", ModeNone, ModeNone, 2),
		Op(0x58, "CLI", ModeNone, ModeNone, 2),
		Op(0x78, "SEI", ModeNone, ModeNone, 2),
		Op(0xB8, "CLV", ModeNone, ModeNone, 2),
		Op(0xD8, "CLD", ModeNone, ModeNone, 2),
		Op(0xF8, "SED", ModeNone, ModeNone, 2),

		// INC
		Op(0xE6, "INC", ModeZero, ModeZero, 5),
		Op(0xF6, "INC", ModeZeroX, ModeZeroX, 6),
		Op(0xEE, "INC", ModeAddr, ModeAddr, 6),
		Op(0xFE, "INC", ModeAbsX, ModeAbsX, 7),

		// JMP / JSR — dst is the implicit PC per spec.md §4.5's "dst = PC" rule
		Op(0x4C, "JMP", ModeAddr, ModePC, 3),
		Op(0x6C, "JMP", ModeAInd, ModePC, 5),
		Op(0x20, "JSR", ModeAddr, ModePC, 6),

		// LDA
		Op(0xA9, "LDA", ModeImm, ModeAC, 2),
		Op(0xA5, "LDA", ModeZero, ModeAC, 3),
		Op(0xB5, "LDA", ModeZeroX, ModeAC, 4),
		Op(0xAD, "LDA", ModeAddr, ModeAC, 4),
		Op(0xBD, "LDA", ModeAbsX, ModeAC, 4),
		Op(0xB9, "LDA", ModeAbsY, ModeAC, 4),
		Op(0xA1, "LDA", ModeIndX, ModeAC, 6),
		Op(0xB1, "LDA", ModeIndY, ModeAC, 5),

		// LDX
		Op(0xA2, "LDX", ModeImm, ModeXR, 2),
		Op(0xA6, "LDX", ModeZero, ModeXR, 3),
		Op(0xB6, "LDX", ModeZeroY, ModeXR, 4),
		Op(0xAE, "LDX", ModeAddr, ModeXR, 4),
		Op(0xBE, "LDX", ModeAbsY, ModeXR, 4),

		// LDY
		Op(0xA0, "LDY", ModeImm, ModeYR, 2),
		Op(0xA4, "LDY", ModeZero, ModeYR, 3),
		Op(0xB4, "LDY", ModeZeroX, ModeYR, 4),
		Op(0xAC, "LDY", ModeAddr, ModeYR, 4),
		Op(0xBC, "LDY", ModeAbsX, ModeYR, 4),

		// LSR
		Op(0x4A, "LSR", ModeAC, ModeAC, 2),
		Op(0x46, "LSR", ModeZero, ModeZero, 5),
		Op(0x56, "LSR", ModeZeroX, ModeZeroX, 6),
		Op(0x4E, "LSR", ModeAddr, ModeAddr, 6),
		Op(0x5E, "LSR", ModeAbsX, ModeAbsX, 7),

		Op(0xEA, "NOP", ModeNone, ModeNone, 2),

		// ORA
		Op(0x09, "ORA", ModeImm, ModeAC, 2),
		Op(0x05, "ORA", ModeZero, ModeAC, 3),
		Op(0x15, "ORA", ModeZeroX, ModeAC, 4),
		Op(0x0D, "ORA", ModeAddr, ModeAC, 4),
		Op(0x1D, "ORA", ModeAbsX, ModeAC, 4),
		Op(0x19, "ORA", ModeAbsY, ModeAC, 4),
		Op(0x01, "ORA", ModeIndX, ModeAC, 6),
		Op(0x11, "ORA", ModeIndY, ModeAC, 5),

		// Register transfers. All implied-operand: the mnemonic alone names
		// the registers involved, so src/dst stay None to avoid printing a
		// spurious operand (see DESIGN.md).
		Op(0xAA, "TAX", ModeNone, ModeNone, 2),
		Op(0x8A, "TXA", ModeNone, ModeNone, 2),
		Op(0xCA, "DEX", ModeNone, ModeNone, 2),
		Op(0xE8, "INX", ModeNone, ModeNone, 2),
		Op(0xA8, "TAY", ModeNone, ModeNone, 2),
		Op(0x98, "TYA", ModeNone, ModeNone, 2),
		Op(0x88, "DEY", ModeNone, ModeNone, 2),
		Op(0xC8, "INY", ModeNone, ModeNone, 2),

		// ROL / ROR
		Op(0x2A, "ROL", ModeAC, ModeAC, 2),
		Op(0x26, "ROL", ModeZero, ModeZero, 5),
		Op(0x36, "ROL", ModeZeroX, ModeZeroX, 6),
		Op(0x2E, "ROL", ModeAddr, ModeAddr, 6),
		Op(0x3E, "ROL", ModeAbsX, ModeAbsX, 7),
		Op(0x6A, "ROR", ModeAC, ModeAC, 2),
		Op(0x66, "ROR", ModeZero, ModeZero, 5),
		Op(0x76, "ROR", ModeZeroX, ModeZeroX, 6),
		Op(0x6E, "ROR", ModeAddr, ModeAddr, 6),
		Op(0x7E, "ROR", ModeAbsX, ModeAbsX, 7),

		Op(0x40, "RTI", ModeNone, ModeNone, 6),
		Op(0x60, "RTS", ModeNone, ModeNone, 6),

		// SBC
		Op(0xE9, "SBC", ModeImm, ModeAC, 2),
		Op(0xE5, "SBC", ModeZero, ModeAC, 3),
		Op(0xF5, "SBC", ModeZeroX, ModeAC, 4),
		Op(0xED, "SBC", ModeAddr, ModeAC, 4),
		Op(0xFD, "SBC", ModeAbsX, ModeAC, 4),
		Op(0xF9, "SBC", ModeAbsY, ModeAC, 4),
		Op(0xE1, "SBC", ModeIndX, ModeAC, 6),
		Op(0xF1, "SBC", ModeIndY, ModeAC, 5),

		// STA / STX / STY
		Op(0x85, "STA", ModeAC, ModeZero, 3),
		Op(0x95, "STA", ModeAC, ModeZeroX, 4),
		Op(0x8D, "STA", ModeAC, ModeAddr, 4),
		Op(0x9D, "STA", ModeAC, ModeAbsX, 5),
		Op(0x99, "STA", ModeAC, ModeAbsY, 5),
		Op(0x81, "STA", ModeAC, ModeIndX, 6),
		Op(0x91, "STA", ModeAC, ModeIndY, 6),
		Op(0x86, "STX", ModeXR, ModeZero, 3),
		Op(0x96, "STX", ModeXR, ModeZeroY, 4),
		Op(0x8E, "STX", ModeXR, ModeAddr, 4),
		Op(0x84, "STY", ModeYR, ModeZero, 3),
		Op(0x94, "STY", ModeYR, ModeZeroX, 4),
		Op(0x8C, "STY", ModeYR, ModeAddr, 4),

		// Stack operations. Implied-operand, same reasoning as the register
		// transfers above.
		Op(0x9A, "TXS", ModeNone, ModeNone, 2),
		Op(0xBA, "TSX", ModeNone, ModeNone, 2),
		Op(0x48, "PHA", ModeNone, ModeNone, 3),
		Op(0x68, "PLA", ModeNone, ModeNone, 4),
		Op(0x08, "PHP", ModeNone, ModeNone, 3),
		Op(0x28, "PLP", ModeNone, ModeNone, 4),
	}

	table := make(map[byte]Opcode, len(ops))
	for _, op := range ops {
		table[op.Value] = op
	}
	return table
}

// Decode looks up the opcode byte for addr, returning UnknownOpcode if the
// byte is absent from the table (spec.md §4.2).
func Decode(b byte, addr uint16) (Opcode, error) {
	op, ok := OpcodeTable[b]
	if !ok {
		return Opcode{}, &UnknownOpcode{Byte: b, Addr: addr}
	}
	return op, nil
}

// branchMnemonics are the eight conditional branches; their src mode is
// always REL (spec.md §3).
var branchMnemonics = map[string]bool{
	"BPL": true, "BMI": true, "BVC": true, "BVS": true,
	"BCC": true, "BCS": true, "BNE": true, "BEQ": true,
}

// addressedMnemonics render their src (or, failing that, dst) operand via
// the addressed-operand rendering path rather than the register/flag short
// rendering (spec.md §4.5 Formatter, the "brittle mnemonic-set test").
var addressedMnemonics = map[string]bool{
	"ADC": true, "AND": true, "ASL": true, "BIT": true, "CMP": true,
	"CPX": true, "CPY": true, "DEC": true, "EOR": true, "INC": true,
	"JMP": true, "LDA": true, "LDX": true, "LDY": true, "LSR": true,
	"ORA": true, "ROL": true, "ROR": true, "SBC": true,
	"STA": true, "STX": true, "STY": true,
}
