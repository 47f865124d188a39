// Package bits provides small helpers for bit and nibble manipulation.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Swap exchanges the high and low nibble of b.
func Swap(b uint8) uint8 {
	return b<<4 | b>>4
}

// FromBool returns 1 if v is set, otherwise 0.
func FromBool[T constraints.Unsigned](v bool) T {
	if v {
		return 1
	}
	return 0
}
