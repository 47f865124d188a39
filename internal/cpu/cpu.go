// Package cpu implements the instruction core of the Sharp SM83, the
// CPU of the Game Boy. The CPU is stepped one instruction at a time by
// the caller, and counts elapsed time in clock ticks (T-cycles).
package cpu

import (
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the memory the CPU executes from. Reads and writes are
// assumed to be synchronous.
type Bus interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
}

// readWord reads a little-endian word at address.
func (c *CPU) readWord(address uint16) uint16 {
	return uint16(c.bus.ReadByte(address)) | uint16(c.bus.ReadByte(address+1))<<8
}

// writeWord writes a little-endian word at address.
func (c *CPU) writeWord(address uint16, value uint16) {
	c.bus.WriteByte(address, uint8(value))
	c.bus.WriteByte(address+1, uint8(value>>8))
}

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus    Bus
	log    log.Logger
	tracer Tracer

	cycles uint64
	ime    bool
	halted bool
}

// Opt is a function that modifies a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithTracer sets a Tracer, called after every instruction.
func WithTracer(t Tracer) Opt {
	return func(c *CPU) {
		c.tracer = t
	}
}

// WithRegisters sets the initial register state, e.g. DMGBoot to
// start as if the boot ROM had just finished.
func WithRegisters(s Snapshot) Opt {
	return func(c *CPU) {
		c.restore(s)
	}
}

// WithPC sets the initial program counter.
func WithPC(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// NewCPU creates a new CPU executing from bus.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	c.initRegisters()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cycles returns the number of clock ticks executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Step executes a single instruction and returns the number of clock
// ticks it took. While halted, no instruction is executed and a
// single machine cycle elapses.
//
// If the instruction fails, an *OpcodeError is returned, neither
// the PC nor the clock are advanced and the flags are unchanged.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		c.cycles += 4
		return 4, nil
	}

	pc := c.PC
	opcode := c.bus.ReadByte(pc)
	in := &InstructionSet[opcode]
	prefixed := in.prefix
	if prefixed {
		opcode = c.bus.ReadByte(pc + 1)
		in = &InstructionSetCB[opcode]
	}

	var result Result
	if c.tracer != nil {
		result = Result{
			PC:          pc,
			Opcode:      opcode,
			Prefixed:    prefixed,
			Instruction: in,
			Before:      c.Snapshot(),
		}
		for i := range result.Memory {
			result.Memory[i] = c.bus.ReadByte(pc + uint16(i))
		}
	}

	out, err := c.execute(in)
	if err != nil {
		c.log.Debugf("cpu: %s (%02X) at %04X failed: %v", in.Name(), opcode, pc, err)
		return 0, &OpcodeError{Opcode: opcode, Prefixed: prefixed, PC: pc, Err: err}
	}

	cycles := in.Cycles
	if in.Branch && !out.Jumped {
		cycles = in.CyclesNotTaken
	}
	if !out.Jumped {
		c.PC += uint16(in.Length)
	}
	c.cycles += uint64(cycles)

	if c.tracer != nil {
		result.Cycles = cycles
		result.Jumped = out.Jumped
		result.After = c.Snapshot()
		c.tracer.Trace(result)
	}
	return cycles, nil
}

// execute runs the microcode of in with the flag write gate open
// for its computed flags, then forces its constant flags. F is left
// as it was if the microcode fails.
func (c *CPU) execute(in *Instruction) (Outcome, error) {
	f := c.F
	c.openFlagWrites(in.Flags)
	out, err := in.fn(c, in)
	c.resetFlagWrites()
	if err != nil {
		c.F = f
		return Outcome{}, err
	}
	c.forceFlags(in.Flags)
	return out, nil
}
