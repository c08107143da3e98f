package disasm

// tiaSymbols is the fixed Atari 2600 TIA/RIOT register dictionary
// (spec.md §6), copied address-for-address from
// original_source/atari2600.py's SYMBOLS map.
var tiaSymbols = map[uint16]string{
	0x00: "VSYNC",
	0x01: "VBLANK",
	0x02: "WSYNC",
	0x04: "NUSIZ0",
	0x05: "NUSIZ1",
	0x06: "COLUP0",
	0x07: "COLUP1",
	0x09: "COLUBK",
	0x0A: "CTRLPF",
	0x0B: "REFP0",
	0x0D: "PF0",
	0x0E: "PF1",
	0x10: "RESP0",
	0x11: "RESP1",
	0x12: "RESM0",
	0x13: "RESM1",
	0x14: "RESBL",
	0x15: "AUDC0",
	0x16: "AUDC1",
	0x17: "AUDF0",
	0x18: "AUDF1",
	0x19: "AUDV0",
	0x1A: "AUDV1",
	0x1B: "GRP0",
	0x1C: "GRP1",
	0x1D: "ENAM0",
	0x1E: "ENAM1",
	0x1F: "ENABL",
	0x20: "HMP0",
	0x21: "HMP1",
	0x22: "HMM0",
	0x23: "HMM1",
	0x24: "HMBL",
	0x25: "VDELP0",
	0x26: "VDELP1",
	0x2A: "HMOVE",
	0x2C: "CXCLR",
	0x30: "CXM0P",
	0x31: "CXM1P",
	0x33: "CXP1FB",
	0x34: "CXM0FB",
	0x35: "CXM1FB",
	0x37: "CXPPMM",
	0x3C: "INPT4",
	0x0280: "SWCHA",
	0x0282: "SWCHB",
	0x0284: "INTIM",
	0x0294: "TIM1T",
	0x0295: "TIM8T",
	0x0296: "TIM64T",
}

// DefaultSymbols returns a fresh copy of the pre-seeded TIA/RIOT symbol
// table, safe for a caller to mutate before constructing a Memory.
func DefaultSymbols() map[uint16]string {
	out := make(map[uint16]string, len(tiaSymbols))
	for addr, name := range tiaSymbols {
		out[addr] = name
	}
	return out
}
