package disasm

import "fmt"

// Operand is the shared capability of every 6502 addressing-mode operand
// (spec.md §3/§4.1). Rather than a type switch over a flat addressing-mode
// enum, each operand family gets its own small struct so decode failures on missing
// fields are a constructor-time concern, not a runtime type assertion.
type Operand interface {
	// String is the default short rendering, used where no address
	// resolution against a Memory is possible or required.
	String() string
	// Render resolves the operand against the instruction's own address and
	// the annotated memory it lives in, producing the best available label
	// for address-bearing and relative-branch operands. Every other operand
	// kind just returns String().
	Render(addr uint16, mem *Memory) string
}

// AddrOperand carries a 16-bit address: ABS, ABSX, ABSY, ADDR, AIND.
type AddrOperand struct {
	Addr uint16
	Mode AddressingMode
}

// NewAddrOperand builds an address-bearing operand, failing the way
// spec.md §4.1 requires ("missing required keys fail with a decode error")
// if addr is not supplied by the caller — enforced here by construction
// rather than a keyword bag, since Go has no optional-kwargs equivalent.
func NewAddrOperand(mode AddressingMode, addr uint16) AddrOperand {
	return AddrOperand{Addr: addr, Mode: mode}
}

func (o AddrOperand) String() string {
	switch o.Mode {
	case ModeAbsX:
		return fmt.Sprintf("$%04X,X", o.Addr)
	case ModeAbsY:
		return fmt.Sprintf("$%04X,Y", o.Addr)
	case ModeAInd:
		return fmt.Sprintf("($%04X)", o.Addr)
	default: // ModeAbs, ModeAddr
		return fmt.Sprintf("$%04X", o.Addr)
	}
}

func (o AddrOperand) Render(_ uint16, mem *Memory) string {
	label := mem.AddrLabel(o.Addr, 4)
	switch o.Mode {
	case ModeAbsX:
		return label + ",X"
	case ModeAbsY:
		return label + ",Y"
	case ModeAInd:
		return "(" + label + ")"
	default:
		return label
	}
}

// ZeroOperand carries an 8-bit zero-page address: ZERO, ZERX, ZERY.
type ZeroOperand struct {
	Addr uint8
	Mode AddressingMode
}

func NewZeroOperand(mode AddressingMode, addr uint8) ZeroOperand {
	return ZeroOperand{Addr: addr, Mode: mode}
}

func (o ZeroOperand) String() string {
	switch o.Mode {
	case ModeZeroX:
		return fmt.Sprintf("$%02X,X", o.Addr)
	case ModeZeroY:
		return fmt.Sprintf("$%02X,Y", o.Addr)
	default:
		return fmt.Sprintf("$%02X", o.Addr)
	}
}

func (o ZeroOperand) Render(_ uint16, mem *Memory) string {
	label := mem.AddrLabel(uint16(o.Addr), 2)
	switch o.Mode {
	case ModeZeroX:
		return label + ",X"
	case ModeZeroY:
		return label + ",Y"
	default:
		return label
	}
}

// ImmOperand carries an 8-bit immediate value: IMM.
type ImmOperand struct {
	Value uint8
}

func NewImmOperand(value uint8) ImmOperand { return ImmOperand{Value: value} }

func (o ImmOperand) String() string                    { return fmt.Sprintf("#$%02X", o.Value) }
func (o ImmOperand) Render(_ uint16, _ *Memory) string { return o.String() }

// IndOperand carries an 8-bit zero-page table offset: INDX, INDY.
type IndOperand struct {
	Offset uint8
	Mode   AddressingMode
}

func NewIndOperand(mode AddressingMode, offset uint8) IndOperand {
	return IndOperand{Offset: offset, Mode: mode}
}

func (o IndOperand) String() string {
	if o.Mode == ModeIndY {
		return fmt.Sprintf("($%02X),Y", o.Offset)
	}
	return fmt.Sprintf("($%02X,X)", o.Offset)
}

func (o IndOperand) Render(_ uint16, _ *Memory) string { return o.String() }

// RelOperand carries a signed 8-bit branch offset: REL.
type RelOperand struct {
	Offset int8
}

// NewRelOperand decodes the raw unsigned byte per spec.md §4.1: values
// >= 128 are reinterpreted as negative by subtracting 256.
func NewRelOperand(raw uint8) RelOperand {
	v := int(raw)
	if v >= 128 {
		v -= 256
	}
	return RelOperand{Offset: int8(v)}
}

func (o RelOperand) String() string {
	return fmt.Sprintf(".%+d", o.Offset)
}

// Render resolves the branch target (addr+2+offset, i.e. relative to the
// byte after the two-byte branch instruction) to its best available label.
func (o RelOperand) Render(addr uint16, mem *Memory) string {
	target := uint16(int(addr) + 2 + int(o.Offset))
	return mem.AddrLabel(target, 4)
}

// Target computes the resolved branch target address.
func (o RelOperand) Target(addr uint16) uint16 {
	return uint16(int(addr) + 2 + int(o.Offset))
}

// RegisterOperand is the implicit, zero-byte family: AC, XR, YR, SP, PC, SR,
// and the flag pseudo-registers FC, FD, FI, FV, plus NONE.
type RegisterOperand struct {
	Mode AddressingMode
}

func NewRegisterOperand(mode AddressingMode) RegisterOperand { return RegisterOperand{Mode: mode} }

func (o RegisterOperand) String() string {
	switch o.Mode {
	case ModeAC:
		return "A"
	case ModeXR:
		return "X"
	case ModeYR:
		return "Y"
	case ModeSP:
		return "SP"
	case ModePC:
		return "PC"
	case ModeSR:
		return "SR"
	case ModeFC:
		return "C"
	case ModeFD:
		return "D"
	case ModeFI:
		return "I"
	case ModeFV:
		return "V"
	default: // ModeNone
		return ""
	}
}

func (o RegisterOperand) Render(_ uint16, _ *Memory) string { return o.String() }
