package cpu

// move copies the source into the destination. The source is
// resolved first, so (HL+) and (HL-) step HL exactly once whichever
// side they appear on.
//
//	LD n, m
//	n, m = A, B, C, D, E, H, L, (HL), (HL+), (HL-), (BC), (DE), (a16), d8
//	LD nn, mm
//	nn, mm = BC, DE, HL, SP, d16
//	LDH (a8), A
//	LDH A, (a8)
//	LD (C), A
//	LD A, (C)
func (c *CPU) move(in *Instruction) (Outcome, error) {
	v := c.load(c.resolve(in.Src))
	c.store(c.resolve(in.Dst), v)
	return Outcome{Value: v}, nil
}

// push pushes the given register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(in *Instruction) (Outcome, error) {
	v := c.load(c.resolve(in.Dst))
	c.pushStack(v)
	return Outcome{Value: v}, nil
}

// pop pops the top two bytes of the stack into the given register pair.
// Popping into AF drops the low nibble of F.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop(in *Instruction) (Outcome, error) {
	v := c.popStack()
	c.store(c.resolve(in.Dst), v)
	return Outcome{Value: v}, nil
}
