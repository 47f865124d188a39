package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// swap the upper and lower nibbles of a byte
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(in *Instruction) (Outcome, error) {
	dst := c.resolve(in.Dst)
	n, err := c.loadByte(dst)
	if err != nil {
		return Outcome{}, err
	}
	result := bits.Swap(n)
	c.shouldZeroFlag(result)
	c.store(dst, uint16(result))
	return Outcome{Value: uint16(result)}, nil
}
