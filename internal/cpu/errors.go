package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is returned when an opcode is not part of the
	// instruction set.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrOperandRange is returned when an operand expected to hold a
	// byte holds a wider value.
	ErrOperandRange = errors.New("operand out of range")
)

// OpcodeError is returned by Step when an instruction fails. The CPU
// is left at the failing instruction.
type OpcodeError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
	Err      error
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: CB %02X at %04X: %v", e.Opcode, e.PC, e.Err)
	}
	return fmt.Sprintf("cpu: %02X at %04X: %v", e.Opcode, e.PC, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
