package cpu

// logical applies fn to the destination and source, both of which
// must be 8 bits wide, and writes the result back to the destination.
func (c *CPU) logical(in *Instruction, fn func(a, b uint8) uint8) (Outcome, error) {
	dst := c.resolve(in.Dst)
	a, err := c.loadByte(dst)
	if err != nil {
		return Outcome{}, err
	}
	b, err := c.loadByte(c.resolve(in.Src))
	if err != nil {
		return Outcome{}, err
	}
	result := fn(a, b)
	c.shouldZeroFlag(result)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(in *Instruction) (Outcome, error) {
	return c.logical(in, func(a, b uint8) uint8 { return a & b })
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(in *Instruction) (Outcome, error) {
	return c.logical(in, func(a, b uint8) uint8 { return a | b })
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(in *Instruction) (Outcome, error) {
	return c.logical(in, func(a, b uint8) uint8 { return a ^ b })
}

// cpl complements the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) cpl(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	result := ^uint8(c.load(dst))
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// ccf complements the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) ccf(*Instruction) (Outcome, error) {
	c.SetFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	return Outcome{}, nil
}

// scf sets the carry flag. The flag itself is forced by the
// instruction's flag effects.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) scf(*Instruction) (Outcome, error) {
	c.setFlag(FlagCarry)
	return Outcome{}, nil
}
