package cpu

// nop does nothing.
//
//	NOP
func (c *CPU) nop(*Instruction) (Outcome, error) {
	return Outcome{}, nil
}

// halt puts the CPU into halt mode until an interrupt is requested.
//
//	HALT
func (c *CPU) halt(*Instruction) (Outcome, error) {
	c.halted = true
	c.log.Debugf("cpu: halted at %04X", c.PC)
	return Outcome{}, nil
}

// stop halts the CPU. Turning off the display is left to the
// peripherals.
//
//	STOP
func (c *CPU) stop(*Instruction) (Outcome, error) {
	c.halted = true
	c.log.Debugf("cpu: stopped at %04X", c.PC)
	return Outcome{}, nil
}

// di disables interrupts.
//
//	DI
func (c *CPU) di(*Instruction) (Outcome, error) {
	c.SetInterruptsEnabled(false)
	return Outcome{}, nil
}

// ei enables interrupts.
//
//	EI
func (c *CPU) ei(*Instruction) (Outcome, error) {
	c.SetInterruptsEnabled(true)
	return Outcome{}, nil
}

func (c *CPU) invalid(*Instruction) (Outcome, error) {
	return Outcome{}, ErrInvalidOpcode
}

// InterruptsEnabled reports the state of the interrupt master enable.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// SetInterruptsEnabled sets the interrupt master enable.
func (c *CPU) SetInterruptsEnabled(enabled bool) {
	if c.ime != enabled {
		c.log.Debugf("cpu: interrupts enabled=%t at %04X", enabled, c.PC)
	}
	c.ime = enabled
}

// Halted reports whether the CPU is halted by HALT or STOP.
func (c *CPU) Halted() bool {
	return c.halted
}

// Resume leaves halt mode.
func (c *CPU) Resume() {
	c.halted = false
}

// Interrupt services an interrupt: the PC is pushed onto the stack,
// interrupts are disabled and execution continues at vector. It takes
// 5 machine cycles.
func (c *CPU) Interrupt(vector uint16) {
	c.halted = false
	c.ime = false
	c.pushStack(c.PC)
	c.PC = vector
	c.cycles += 20
}
