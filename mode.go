package disasm

// AddressingMode enumerates the 6502 addressing-mode families used by the
// operand model (spec.md §3). Size and rendering both derive from this.
type AddressingMode int

const (
	ModeNone AddressingMode = iota
	ModeAbs                 // absolute, 16-bit address, 2 operand bytes
	ModeAbsX                // absolute,X
	ModeAbsY                // absolute,Y
	ModeAddr                // generic absolute, 16-bit address, 2 operand bytes
	ModeAInd                // absolute indirect, (addr)
	ModeZero                // zero page, 8-bit address, 1 operand byte
	ModeZeroX               // zero page,X
	ModeZeroY               // zero page,Y
	ModeImm                 // immediate, 8-bit value, 1 operand byte
	ModeIndX                // (zp,X)
	ModeIndY                // (zp),Y
	ModeRel                 // signed 8-bit branch offset, 1 operand byte
	ModeAC                  // implicit accumulator
	ModeXR                  // implicit X register
	ModeYR                  // implicit Y register
	ModeSP                  // implicit stack pointer
	ModePC                  // implicit program counter (JMP/JSR destination)
	ModeSR                  // implicit status register
	ModeFC                  // implicit carry flag
	ModeFD                  // implicit decimal flag
	ModeFI                  // implicit interrupt-disable flag
	ModeFV                  // implicit overflow flag
)

// isAddrBearing16 reports whether mode carries a 16-bit address and consumes
// two operand bytes (spec.md §4.2 size rule, first bucket).
func isAddrBearing16(m AddressingMode) bool {
	switch m {
	case ModeAbs, ModeAbsX, ModeAbsY, ModeAddr, ModeAInd:
		return true
	}
	return false
}

// isOperandBearing8 reports whether mode consumes exactly one operand byte
// (spec.md §4.2 size rule, second bucket).
func isOperandBearing8(m AddressingMode) bool {
	switch m {
	case ModeImm, ModeIndX, ModeIndY, ModeRel, ModeZero, ModeZeroX, ModeZeroY:
		return true
	}
	return false
}

// isMemoryOperand reports whether mode addresses a location in memory that
// the tracer should annotate read/write. Per DESIGN.md this includes zero
// page alongside the absolute family, resolving the tension between
// spec.md's annotation table and its own scenario S6.
func isMemoryOperand(m AddressingMode) bool {
	switch m {
	case ModeAbs, ModeAbsX, ModeAbsY, ModeAddr, ModeZero, ModeZeroX, ModeZeroY:
		return true
	}
	return false
}
