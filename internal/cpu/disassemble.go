package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at pc, returning its mnemonic
// with immediate operands filled in and its length in bytes.
func Disassemble(bus Bus, pc uint16) (string, uint8) {
	in := &InstructionSet[bus.ReadByte(pc)]
	if in.prefix {
		in = &InstructionSetCB[bus.ReadByte(pc+1)]
	}
	if !in.Legal() {
		return fmt.Sprintf("DB $%02X", bus.ReadByte(pc)), 1
	}

	n := bus.ReadByte(pc + 1)
	nn := uint16(n) | uint16(bus.ReadByte(pc+2))<<8
	m := in.Mnemonic
	switch {
	case strings.Contains(m, "d16"):
		m = strings.Replace(m, "d16", fmt.Sprintf("$%04X", nn), 1)
	case strings.Contains(m, "a16"):
		m = strings.Replace(m, "a16", fmt.Sprintf("$%04X", nn), 1)
	case strings.Contains(m, "d8"):
		m = strings.Replace(m, "d8", fmt.Sprintf("$%02X", n), 1)
	case strings.Contains(m, "a8"):
		m = strings.Replace(m, "a8", fmt.Sprintf("$FF%02X", n), 1)
	case strings.Contains(m, "+r8"):
		m = strings.Replace(m, "+r8", fmt.Sprintf("%+d", int8(n)), 1)
	case strings.Contains(m, "r8") && in.Branch:
		// relative jumps are shown with their target
		target := uint16(int32(pc) + int32(in.Length) + int32(int8(n)))
		m = strings.Replace(m, "r8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(m, "r8"):
		m = strings.Replace(m, "r8", fmt.Sprintf("%+d", int8(n)), 1)
	}
	return m, in.Length
}
