// Package trace renders the state of the CPU after each instruction as
// text, in the format used by reference logs, and compares traces
// against those logs.
package trace

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/cpu"
)

// Format selects how a Result is rendered.
type Format uint8

const (
	// Doctor is the gameboy-doctor format: the registers before the
	// instruction followed by the 4 bytes at PC, e.g.
	//
	//	A:01 F:B0 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0100 PCMEM:00,C3,13,02
	Doctor Format = iota
	// Extended appends the mnemonic, the cycles taken and the
	// cumulative clock to the Doctor format.
	Extended
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "doctor":
		return Doctor, nil
	case "extended":
		return Extended, nil
	}
	return 0, fmt.Errorf("trace: unknown format %q", s)
}

func (f Format) String() string {
	if f == Extended {
		return "extended"
	}
	return "doctor"
}

// Line renders r in the given format, without a trailing newline.
func Line(f Format, r cpu.Result) string {
	s := r.Before
	line := fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC,
		r.Memory[0], r.Memory[1], r.Memory[2], r.Memory[3])
	if f == Extended {
		line += fmt.Sprintf(" | %-12s %2d %d", r.Instruction.Name(), r.Cycles, r.After.Cycles)
	}
	return line
}
