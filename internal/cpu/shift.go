package cpu

import "github.com/thelolagemann/sm83/internal/types"

// shiftLeftArithmetic shifts n left by 1 bit. The least significant bit
// is reset, and the most significant bit is copied to the carry flag.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(in *Instruction) (Outcome, error) {
	return c.rotate(in, func(n uint8) (uint8, bool) {
		return n << 1, n&types.Bit7 != 0
	})
}

// shiftRightArithmetic shifts n right by 1 bit. The most significant bit
// keeps its value, and the least significant bit is copied to the carry flag.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(in *Instruction) (Outcome, error) {
	return c.rotate(in, func(n uint8) (uint8, bool) {
		return n>>1 | n&types.Bit7, n&types.Bit0 != 0
	})
}

// shiftRightLogical shifts n right by 1 bit. The most significant bit is
// reset, and the least significant bit is copied to the carry flag.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(in *Instruction) (Outcome, error) {
	return c.rotate(in, func(n uint8) (uint8, bool) {
		return n >> 1, n&types.Bit0 != 0
	})
}
