package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagOrder is the order flags are listed in an opcode table: Z N H C.
var flagOrder = [4]Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

// FlagEffect describes what an instruction does to a single flag.
type FlagEffect uint8

const (
	// Unaffected flags keep their previous value.
	Unaffected FlagEffect = iota
	// Reset flags are forced to 0.
	Reset
	// Set flags are forced to 1.
	Set
	// Computed flags are written by the instruction's microcode.
	Computed
)

// FlagEffects holds the effect on Z, N, H and C, in that order.
type FlagEffects [4]FlagEffect

// flags parses the usual opcode table notation, e.g. "Z 0 H C",
// where '-' leaves a flag alone, '0' and '1' force it and any
// other character marks it as computed.
func flags(spec string) FlagEffects {
	fields := strings.Fields(spec)
	if len(fields) != 4 {
		panic(fmt.Sprintf("cpu: malformed flag spec %q", spec))
	}
	var e FlagEffects
	for i, f := range fields {
		switch f {
		case "-":
			e[i] = Unaffected
		case "0":
			e[i] = Reset
		case "1":
			e[i] = Set
		default:
			e[i] = Computed
		}
	}
	return e
}

// Effect returns the effect on a single flag.
func (e FlagEffects) Effect(flag Flag) FlagEffect {
	for i, f := range flagOrder {
		if f == flag {
			return e[i]
		}
	}
	return Unaffected
}

func (e FlagEffects) String() string {
	var b strings.Builder
	for i, eff := range e {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch eff {
		case Unaffected:
			b.WriteByte('-')
		case Reset:
			b.WriteByte('0')
		case Set:
			b.WriteByte('1')
		default:
			b.WriteByte("ZNHC"[i])
		}
	}
	return b.String()
}

// openFlagWrites opens the write gate for the computed flags of e
// only. Microcode still reads the flags as they were before the
// instruction.
func (r *Registers) openFlagWrites(e FlagEffects) {
	var writable [4]bool
	for i, eff := range e {
		writable[i] = eff == Computed
	}
	r.EnableFlagWrites(writable[0], writable[1], writable[2], writable[3])
}

// forceFlags writes the constant flags of e. The write gate must
// be open for every flag.
func (r *Registers) forceFlags(e FlagEffects) {
	for i, eff := range e {
		switch eff {
		case Reset:
			r.SetFlag(flagOrder[i], false)
		case Set:
			r.SetFlag(flagOrder[i], true)
		}
	}
}

// setFlag sets a flag.
func (c *CPU) setFlag(flag Flag) {
	c.SetFlag(flag, true)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.Flag(flag)
}

// setFlags sets all four flags at once. Flags closed by the
// write gate are left untouched.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.SetFlag(FlagZero, zero)
	c.SetFlag(FlagSubtract, subtract)
	c.SetFlag(FlagHalfCarry, halfCarry)
	c.SetFlag(FlagCarry, carry)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.SetFlag(FlagZero, value == 0)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return bits.FromBool[uint8](c.isFlagSet(FlagCarry))
}
