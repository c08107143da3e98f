package disasm

import "testing"

func TestIsAddrBearing16(t *testing.T) {
	for _, m := range []AddressingMode{ModeAbs, ModeAbsX, ModeAbsY, ModeAddr, ModeAInd} {
		if !isAddrBearing16(m) {
			t.Errorf("mode %v expected to be 16-bit address bearing", m)
		}
	}
	for _, m := range []AddressingMode{ModeZero, ModeImm, ModeRel, ModeAC, ModeNone} {
		if isAddrBearing16(m) {
			t.Errorf("mode %v unexpectedly 16-bit address bearing", m)
		}
	}
}

func TestIsOperandBearing8(t *testing.T) {
	for _, m := range []AddressingMode{ModeImm, ModeIndX, ModeIndY, ModeRel, ModeZero, ModeZeroX, ModeZeroY} {
		if !isOperandBearing8(m) {
			t.Errorf("mode %v expected to be 8-bit operand bearing", m)
		}
	}
	for _, m := range []AddressingMode{ModeAbs, ModeAC, ModeNone} {
		if isOperandBearing8(m) {
			t.Errorf("mode %v unexpectedly 8-bit operand bearing", m)
		}
	}
}

func TestIsMemoryOperand(t *testing.T) {
	for _, m := range []AddressingMode{ModeAbs, ModeAbsX, ModeAbsY, ModeAddr, ModeZero, ModeZeroX, ModeZeroY} {
		if !isMemoryOperand(m) {
			t.Errorf("mode %v expected to address memory", m)
		}
	}
	for _, m := range []AddressingMode{ModeImm, ModeRel, ModeAC, ModeAInd, ModeIndX, ModeIndY, ModeNone} {
		if isMemoryOperand(m) {
			t.Errorf("mode %v unexpectedly addresses memory", m)
		}
	}
}
