package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Register names one of the 8-bit registers. The values of B through A
// follow the 3-bit register encoding of the opcode map, where 6 selects
// (HL); F takes that slot here as it is never encoded directly.
type Register uint8

const (
	RegB Register = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegF
	RegA
)

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "F", "A"}

func (r Register) String() string {
	return registerNames[r&7]
}

// Pair names one of the 16-bit registers.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [5]string{"BC", "DE", "HL", "SP", "AF"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return "??"
}

// allFlags is the set of bits of F that hold flags.
const allFlags uint8 = 0xF0

// Registers is the register file of the CPU. It holds the 8-bit
// registers, their 16-bit pair views, the stack pointer and the
// program counter.
//
// Flag writes pass through a write gate. The gate is opened for
// the flags an instruction computes before its microcode runs, and
// reset to all writable once the instruction completes.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	F types.Register
	H types.Register
	L types.Register

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
	AF *types.RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the instruction being executed.
	PC uint16

	flagMask uint8
}

// initRegisters wires up the pair views. It must be called once
// the Registers have reached their final address.
func (r *Registers) initRegisters() {
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	r.AF = types.NewRegisterPair(&r.A, &r.F)
	r.AF.LowMask = allFlags
	r.flagMask = allFlags
}

func (r *Registers) register(reg Register) *types.Register {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	default:
		return &r.F
	}
}

// Read8 returns the value of an 8-bit register.
func (r *Registers) Read8(reg Register) uint8 {
	if reg == RegF {
		return r.F & allFlags
	}
	return *r.register(reg)
}

// Write8 sets the value of an 8-bit register. Writes to F only
// reach the flags open in the write gate.
func (r *Registers) Write8(reg Register, value uint8) {
	if reg == RegF {
		r.writeFlags(value)
		return
	}
	*r.register(reg) = value
}

// Read16 returns the value of a 16-bit register.
func (r *Registers) Read16(pair Pair) uint16 {
	switch pair {
	case PairBC:
		return r.BC.Uint16()
	case PairDE:
		return r.DE.Uint16()
	case PairHL:
		return r.HL.Uint16()
	case PairAF:
		return r.AF.Uint16()
	default:
		return r.SP
	}
}

// Write16 sets both halves of a 16-bit register.
func (r *Registers) Write16(pair Pair, value uint16) {
	switch pair {
	case PairBC:
		r.BC.SetUint16(value)
	case PairDE:
		r.DE.SetUint16(value)
	case PairHL:
		r.HL.SetUint16(value)
	case PairAF:
		r.A = uint8(value >> 8)
		r.writeFlags(uint8(value))
	default:
		r.SP = value
	}
}

func (r *Registers) writeFlags(value uint8) {
	r.F = (r.F&^r.flagMask | value&r.flagMask) & allFlags
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears a flag, provided the write gate is open for it.
func (r *Registers) SetFlag(flag Flag, value bool) {
	bit := uint8(1) << flag
	if r.flagMask&bit == 0 {
		return
	}
	if value {
		r.F |= bit
	} else {
		r.F &^= bit
	}
}

// EnableFlagWrites opens the write gate for the given flags and
// closes it for the rest.
func (r *Registers) EnableFlagWrites(zero, subtract, halfCarry, carry bool) {
	r.flagMask = 0
	for i, open := range [4]bool{zero, subtract, halfCarry, carry} {
		if open {
			r.flagMask |= 1 << flagOrder[i]
		}
	}
}

// resetFlagWrites makes every flag writable again.
func (r *Registers) resetFlagWrites() {
	r.flagMask = allFlags
}
