package cpu

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.bus.WriteByte(c.SP, uint8(value>>8))
	c.SP--
	c.bus.WriteByte(c.SP, uint8(value))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.bus.ReadByte(c.SP))
	c.SP++
	upper := uint16(c.bus.ReadByte(c.SP)) << 8
	c.SP++
	return lower | upper
}

// jumpTo loads the PC, reporting the jump to the engine.
func (c *CPU) jumpTo(address uint16) (Outcome, error) {
	c.PC = address
	return Outcome{Value: address, Jumped: true}, nil
}

// jumpAbsolute jumps to the given address if the condition holds.
//
//	JP nn
//	JP cc, nn
//	JP (HL)
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(in *Instruction) (Outcome, error) {
	if !c.holds(in.Cond) {
		return Outcome{}, nil
	}
	return c.jumpTo(c.load(c.resolve(in.Src)))
}

// jumpRelative jumps to the address relative to the next instruction
// if the condition holds.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(in *Instruction) (Outcome, error) {
	if !c.holds(in.Cond) {
		return Outcome{}, nil
	}
	offset, err := c.loadByte(c.resolve(in.Src))
	if err != nil {
		return Outcome{}, err
	}
	next := c.PC + uint16(in.Length)
	return c.jumpTo(uint16(int32(next) + int32(int8(offset))))
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address, if the condition holds.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(in *Instruction) (Outcome, error) {
	if !c.holds(in.Cond) {
		return Outcome{}, nil
	}
	address := c.load(c.resolve(in.Src))
	c.pushStack(c.PC + uint16(in.Length))
	return c.jumpTo(address)
}

// ret pops the top two bytes off the stack and jumps to that address,
// if the condition holds.
//
//	RET
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(in *Instruction) (Outcome, error) {
	if !c.holds(in.Cond) {
		return Outcome{}, nil
	}
	return c.jumpTo(c.popStack())
}

// reti returns from an interrupt handler, enabling interrupts.
//
//	RETI
func (c *CPU) reti(in *Instruction) (Outcome, error) {
	c.ime = true
	return c.ret(in)
}

// restart pushes the address of the next instruction onto the stack
// and jumps to one of the fixed vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(in *Instruction) (Outcome, error) {
	vector := c.load(c.resolve(in.Src))
	c.pushStack(c.PC + uint16(in.Length))
	return c.jumpTo(vector)
}
