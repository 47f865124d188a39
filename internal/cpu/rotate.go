package cpu

import "github.com/thelolagemann/sm83/internal/types"

// rotate applies fn to the 8-bit destination, setting Z from the
// result and C from the bit shifted out.
func (c *CPU) rotate(in *Instruction, fn func(n uint8) (result uint8, carry bool)) (Outcome, error) {
	dst := c.resolve(in.Dst)
	n, err := c.loadByte(dst)
	if err != nil {
		return Outcome{}, err
	}
	result, carry := fn(n)
	c.shouldZeroFlag(result)
	c.SetFlag(FlagCarry, carry)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit. RLCA is the same
// operation on A, with Z forced to 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(in *Instruction) (Outcome, error) {
	return c.rotate(in, func(n uint8) (uint8, bool) {
		carry := n & types.Bit7
		return n<<1 | carry>>7, carry != 0
	})
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(in *Instruction) (Outcome, error) {
	return c.rotate(in, func(n uint8) (uint8, bool) {
		carry := n & types.Bit0
		return n>>1 | carry<<7, carry != 0
	})
}

// rotateLeft rotates n left by 1 bit through the carry flag. The carry flag
// is copied to the least significant bit, and the most significant bit is
// copied to the carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(in *Instruction) (Outcome, error) {
	carryIn := c.carryBit()
	return c.rotate(in, func(n uint8) (uint8, bool) {
		return n<<1 | carryIn, n&types.Bit7 != 0
	})
}

// rotateRight rotates n right by 1 bit through the carry flag. The carry
// flag is copied to the most significant bit, and the least significant
// bit is copied to the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(in *Instruction) (Outcome, error) {
	carryIn := c.carryBit()
	return c.rotate(in, func(n uint8) (uint8, bool) {
		return n>>1 | carryIn<<7, n&types.Bit0 != 0
	})
}
