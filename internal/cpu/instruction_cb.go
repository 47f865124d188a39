package cpu

import "fmt"

// InstructionSetCB holds the instructions selected by the 0xCB prefix,
// indexed by the byte following the prefix. Each opcode is laid out
// as xx ooo rrr, where rrr selects the operand (B, C, D, E, H, L,
// (HL), A) and xx selects the group: rotates and shifts (ooo picks
// the operation), BIT, RES and SET (ooo is the bit index).
var InstructionSetCB = newInstructionSetCB()

// cbOperands is the operand selected by the low 3 bits of a CB opcode.
var cbOperands = [8]Operand{regB, regC, regD, regE, regH, regL, atHL, regA}

var cbShifts = [8]struct {
	name  string
	flags string
	fn    Microcode
}{
	{"RLC", "Z 0 0 C", (*CPU).rotateLeftCarry},
	{"RRC", "Z 0 0 C", (*CPU).rotateRightCarry},
	{"RL", "Z 0 0 C", (*CPU).rotateLeft},
	{"RR", "Z 0 0 C", (*CPU).rotateRight},
	{"SLA", "Z 0 0 C", (*CPU).shiftLeftArithmetic},
	{"SRA", "Z 0 0 C", (*CPU).shiftRightArithmetic},
	{"SWAP", "Z 0 0 0", (*CPU).swap},
	{"SRL", "Z 0 0 C", (*CPU).shiftRightLogical},
}

func newInstructionSetCB() [256]Instruction {
	var set [256]Instruction
	for opcode := 0; opcode < 256; opcode++ {
		target := cbOperands[opcode&7]
		memory := opcode&7 == 6
		index := uint8(opcode>>3) & 7

		var in Instruction
		switch opcode >> 6 {
		case 0:
			s := cbShifts[index]
			in = op(fmt.Sprintf("%s %s", s.name, target), 2, 8, s.flags, s.fn, target)
		case 1:
			in = op(fmt.Sprintf("BIT %d,%s", index, target), 2, 8, "Z 0 1 -", (*CPU).testBit, target)
		case 2:
			in = op(fmt.Sprintf("RES %d,%s", index, target), 2, 8, "- - - -", (*CPU).resetBit, target)
		case 3:
			in = op(fmt.Sprintf("SET %d,%s", index, target), 2, 8, "- - - -", (*CPU).setBit, target)
		}
		in.Bit = index

		// (HL) costs a read and, unless only testing, a write back
		if memory {
			if opcode>>6 == 1 {
				in.Cycles = 12
			} else {
				in.Cycles = 16
			}
		}
		set[opcode] = in
	}
	return set
}
