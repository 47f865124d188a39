package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// testBit tests the bit at the given position in the given operand.
// The operand is never written back.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(in *Instruction) (Outcome, error) {
	v, err := c.loadByte(c.resolve(in.Dst))
	if err != nil {
		return Outcome{}, err
	}
	c.SetFlag(FlagZero, !bits.Test(v, in.Bit))
	return Outcome{Value: uint16(v)}, nil
}

// setBit sets the bit at the given position in the given operand.
//
//	SET n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected: none.
func (c *CPU) setBit(in *Instruction) (Outcome, error) {
	return c.rewriteBit(in, bits.Set[uint8])
}

// resetBit clears the bit at the given position in the given operand.
//
//	RES n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected: none.
func (c *CPU) resetBit(in *Instruction) (Outcome, error) {
	return c.rewriteBit(in, bits.Reset[uint8])
}

func (c *CPU) rewriteBit(in *Instruction, fn func(b, i uint8) uint8) (Outcome, error) {
	dst := c.resolve(in.Dst)
	v, err := c.loadByte(dst)
	if err != nil {
		return Outcome{}, err
	}
	result := fn(v, in.Bit)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}
