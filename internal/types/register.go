package types

// Register represents an SM83 Register which holds an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it holds the flags, and only its upper nibble exists.
type Register = uint8

// RegisterPair represents a pair of Registers viewed as one 16-bit value.
// The CPU has 4 register pairs: AF, BC, DE, and HL. Writes go through to
// both halves, so a subsequent read of either half observes them.
type RegisterPair struct {
	High *Register
	Low  *Register

	// LowMask is applied to the low half on write. It is 0xFF for every
	// pair except AF, where the bottom nibble of F is hardwired to 0.
	LowMask uint8
}

// NewRegisterPair returns a RegisterPair viewing high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, LowMask: 0xFF}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low&r.LowMask)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.LowMask
}
