package cpu

// add8 adds b and the carry in to a, setting the flags of the
// add family.
func (c *CPU) add8(a, b, carry uint8) uint8 {
	sum := uint16(a) + uint16(b) + uint16(carry)
	result := uint8(sum)
	c.setFlags(result == 0, false, (a&0xF)+(b&0xF)+carry > 0xF, sum > 0xFF)
	return result
}

// sub8 subtracts b and the carry in from a, setting the flags of the
// subtract family.
func (c *CPU) sub8(a, b, carry uint8) uint8 {
	diff := int16(a) - int16(b) - int16(carry)
	result := uint8(diff)
	c.setFlags(result == 0, true, int16(a&0xF)-int16(b&0xF)-int16(carry) < 0, diff < 0)
	return result
}

// add adds the source to the destination. The width of the destination
// selects between the 8-bit accumulator add and the 16-bit HL add.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected (8-bit):
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
//
// Flags affected (16-bit):
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) add(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	if dst.width == Word {
		a, b := c.load(dst), c.load(c.resolve(in.Src))
		sum := uint32(a) + uint32(b)
		c.setFlags(uint16(sum) == 0, false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
		c.store(dst, uint16(sum))
		return Outcome{Value: uint16(sum)}, nil
	}
	return c.accumulate(dst, in.Src, c.add8, 0)
}

// adc adds the source plus the carry flag to the destination. The
// carry is sampled before the source is read, as the carry flag may
// itself be rewritten by the addition.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) adc(in *Instruction) (Outcome, error) {
	carry := c.carryBit()
	return c.accumulate(c.resolve(in.Dst), in.Src, c.add8, carry)
}

// sub subtracts the source from the destination.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(in *Instruction) (Outcome, error) {
	return c.accumulate(c.resolve(in.Dst), in.Src, c.sub8, 0)
}

// sbc subtracts the source plus the carry flag from the destination.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sbc(in *Instruction) (Outcome, error) {
	carry := c.carryBit()
	return c.accumulate(c.resolve(in.Dst), in.Src, c.sub8, carry)
}

// compare compares the source with the destination. The flags are
// those of SUB; the result is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(in *Instruction) (Outcome, error) {
	a, err := c.loadByte(c.resolve(in.Dst))
	if err != nil {
		return Outcome{}, err
	}
	b, err := c.loadByte(c.resolve(in.Src))
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Value: uint16(c.sub8(a, b, 0))}, nil
}

// accumulate applies fn to the destination and source, writing the
// result back to the destination.
func (c *CPU) accumulate(dst cell, src Operand, fn func(a, b, carry uint8) uint8, carry uint8) (Outcome, error) {
	a, err := c.loadByte(dst)
	if err != nil {
		return Outcome{}, err
	}
	b, err := c.loadByte(c.resolve(src))
	if err != nil {
		return Outcome{}, err
	}
	result := fn(a, b, carry)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// addSP adds the signed immediate to SP and stores the sum in the
// destination. The flags come from the unsigned add of the low byte.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSP(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	e, err := c.loadByte(c.resolve(in.Src))
	if err != nil {
		return Outcome{}, err
	}
	sp := c.SP
	result := uint16(int32(sp) + int32(int8(e)))
	c.SetFlag(FlagHalfCarry, (sp&0xF)+uint16(e&0xF) > 0xF)
	c.SetFlag(FlagCarry, (sp&0xFF)+uint16(e) > 0xFF)
	c.store(dst, result)
	return Outcome{Value: result}, nil
}

// inc increments the operand by 1. 16-bit operands are incremented
// without touching the flags.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A, BC, DE, HL, SP
//
// Flags affected (8-bit):
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) inc(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	v := c.load(dst)
	if dst.width == Word {
		c.store(dst, v+1)
		return Outcome{Value: v + 1}, nil
	}
	result := uint8(v) + 1
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, v&0xF == 0xF)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// dec decrements the operand by 1. 16-bit operands are decremented
// without touching the flags.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A, BC, DE, HL, SP
//
// Flags affected (8-bit):
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) dec(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	v := c.load(dst)
	if dst.width == Word {
		c.store(dst, v-1)
		return Outcome{Value: v - 1}, nil
	}
	result := uint8(v) - 1
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagHalfCarry, v&0xF == 0)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// daa adjusts the accumulator to binary coded decimal after an add or
// subtract, using N to tell which and H and C to find the digits that
// overflowed.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) daa(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	a := uint8(c.load(dst))
	var correction uint8
	carry := c.isFlagSet(FlagCarry)
	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) {
			correction |= 0x06
		}
		if carry {
			correction |= 0x60
		}
		a -= correction
	} else {
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			correction |= 0x06
		}
		if carry || a > 0x99 {
			correction |= 0x60
			carry = true
		}
		a += correction
	}
	c.shouldZeroFlag(a)
	c.SetFlag(FlagCarry, carry)
	c.store(dst, uint16(a))
	return Outcome{Value: uint16(a)}, nil
}
