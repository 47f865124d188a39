package cpu

// Tracer receives the Result of every instruction the CPU completes.
type Tracer interface {
	Trace(r Result)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(r Result)

// Trace calls f(r).
func (f TracerFunc) Trace(r Result) {
	f(r)
}

// Result describes a completed instruction.
type Result struct {
	// PC is the address the instruction was fetched from.
	PC uint16
	// Opcode is the opcode byte, or the byte following the prefix for
	// instructions of InstructionSetCB.
	Opcode   uint8
	Prefixed bool
	// Memory holds the 4 bytes starting at PC, read before execution.
	Memory      [4]uint8
	Instruction *Instruction

	Cycles uint8
	Jumped bool

	Before Snapshot
	After  Snapshot
}

// Bytes returns the encoded instruction.
func (r Result) Bytes() []uint8 {
	return r.Memory[:r.Instruction.Length]
}
