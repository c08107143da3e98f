package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKnownOpcode(t *testing.T) {
	op, err := Decode(0xA9, 0xF000) // LDA #imm
	assert.NoError(t, err)
	assert.Equal(t, "LDA", op.Mnemonic)
	assert.Equal(t, 2, op.Size)
}

func TestDecodeUnknownOpcodeFails(t *testing.T) {
	_, err := Decode(0x02, 0xF000) // never a documented 6502 opcode
	assert.Error(t, err)

	var unknown *UnknownOpcode
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(0x02), unknown.Byte)
}

func TestOpSizeDerivation(t *testing.T) {
	assert.Equal(t, 1, Op(0xEA, "NOP", ModeNone, ModeNone, 2).Size)
	assert.Equal(t, 2, Op(0xA9, "LDA", ModeImm, ModeAC, 2).Size)
	assert.Equal(t, 3, Op(0x4C, "JMP", ModeAddr, ModePC, 3).Size)
	assert.Equal(t, 2, Op(0x85, "STA", ModeAC, ModeZero, 3).Size)
}

func TestBranchMnemonicsAreTheEightConditionalBranches(t *testing.T) {
	for _, m := range []string{"BPL", "BMI", "BVC", "BVS", "BCC", "BCS", "BNE", "BEQ"} {
		assert.True(t, branchMnemonics[m], m)
	}
	assert.False(t, branchMnemonics["JMP"])
}
