package cpu

// Condition is the flag test of a conditional instruction.
type Condition uint8

const (
	// Always is the condition of unconditional instructions.
	Always Condition = iota
	NZ
	Z
	NC
	CY
)

func (cond Condition) String() string {
	return [...]string{"", "NZ", "Z", "NC", "C"}[cond]
}

// holds evaluates the condition against the current flags.
func (c *CPU) holds(cond Condition) bool {
	switch cond {
	case NZ:
		return !c.isFlagSet(FlagZero)
	case Z:
		return c.isFlagSet(FlagZero)
	case NC:
		return !c.isFlagSet(FlagCarry)
	case CY:
		return c.isFlagSet(FlagCarry)
	}
	return true
}

// Outcome is returned by microcode. Value is the computed (or
// discarded) result, for diagnostics. Jumped is set by control flow
// microcode that has loaded the PC itself.
type Outcome struct {
	Value  uint16
	Jumped bool
}

// Microcode performs the data transform of an instruction. It is
// handed the CPU and the descriptor being executed, so the operands
// are resolved at call time.
type Microcode func(c *CPU, in *Instruction) (Outcome, error)

// Instruction describes a single opcode. Instructions are immutable
// once the tables have been built.
type Instruction struct {
	// Mnemonic is the assembler form, used for diagnostics only.
	Mnemonic string
	// Length is the encoded length in bytes, including any prefix.
	Length uint8
	// Flags is the effect the instruction has on each flag.
	Flags FlagEffects
	// Cycles is the cost in clock ticks. For branching instructions
	// this is the cost when the branch is taken.
	Cycles uint8
	// CyclesNotTaken is the cost of a branching instruction whose
	// condition failed.
	CyclesNotTaken uint8
	// Branch marks control flow instructions.
	Branch bool

	Cond Condition
	Dst  Operand
	Src  Operand
	// Bit is the bit index of BIT, RES and SET.
	Bit uint8

	fn      Microcode
	prefix  bool
	illegal bool
}

// Name returns the mnemonic of the instruction.
func (in *Instruction) Name() string {
	return in.Mnemonic
}

// Legal reports whether the instruction is part of the instruction set.
func (in *Instruction) Legal() bool {
	return !in.illegal
}

// op defines a non-branching instruction. The first operand is the
// destination, the second the source.
func op(mnemonic string, length, cycles uint8, flagSpec string, fn Microcode, operands ...Operand) Instruction {
	in := Instruction{
		Mnemonic: mnemonic,
		Length:   length,
		Flags:    flags(flagSpec),
		Cycles:   cycles,
		fn:       fn,
	}
	if len(operands) > 0 {
		in.Dst = operands[0]
	}
	if len(operands) > 1 {
		in.Src = operands[1]
	}
	return in
}

// branch defines a control flow instruction with a target operand.
func branch(mnemonic string, length, taken, notTaken uint8, cond Condition, fn Microcode, target ...Operand) Instruction {
	in := Instruction{
		Mnemonic:       mnemonic,
		Length:         length,
		Flags:          flags("- - - -"),
		Cycles:         taken,
		CyclesNotTaken: notTaken,
		Branch:         true,
		Cond:           cond,
		fn:             fn,
	}
	if len(target) > 0 {
		in.Src = target[0]
	}
	return in
}

// disallowedOpcode defines an unassigned opcode.
func disallowedOpcode() Instruction {
	in := op("XXX", 1, 0, "- - - -", (*CPU).invalid)
	in.illegal = true
	return in
}

// prefixCB is the opcode selecting the secondary table.
const prefixCB = 0xCB
