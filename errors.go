package disasm

import "fmt"

// InvalidRomSize is returned when the input ROM is not exactly 4096 bytes
// (spec.md §6, §7).
type InvalidRomSize struct {
	Got int
}

func (e *InvalidRomSize) Error() string {
	return fmt.Sprintf("expected ROM size of 4096 bytes, found %d bytes", e.Got)
}

// UnknownOpcode is returned when the decoder hits a byte absent from the
// opcode table. Fatal for the run (spec.md §7) — the tracer never catches it.
type UnknownOpcode struct {
	Byte byte
	Addr uint16
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode $%02X at addr $%04X", e.Byte, e.Addr)
}

// MalformedArgument is returned when a CLI value fails the smart_int or
// pair parse (spec.md §7).
type MalformedArgument struct {
	Value  string
	Reason string
}

func (e *MalformedArgument) Error() string {
	return fmt.Sprintf("malformed argument %q: %s", e.Value, e.Reason)
}

// OutOfRange marks a seed address outside [start, end]. The driver logs and
// drops it; it is never fatal for the run (spec.md §7).
type OutOfRange struct {
	Addr uint16
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("address $%04X is out of range", e.Addr)
}
