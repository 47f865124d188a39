package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Snapshot is a copy of the CPU state, sufficient to compare against
// a reference trace.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	Cycles                 uint64
	IME                    bool
	Halted                 bool
}

// DMGBoot is the state of a DMG once the boot ROM has handed over
// to the cartridge.
var DMGBoot = Snapshot{
	A: 0x01, F: 0xB0,
	B: 0x00, C: 0x13,
	D: 0x00, E: 0xD8,
	H: 0x01, L: 0x4D,
	SP: 0xFFFE, PC: 0x0100,
}

// Snapshot returns a copy of the current state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F & allFlags,
		B: c.B, C: c.C,
		D: c.D, E: c.E,
		H: c.H, L: c.L,
		SP:     c.SP,
		PC:     c.PC,
		Cycles: c.cycles,
		IME:    c.ime,
		Halted: c.halted,
	}
}

// restore sets the state from a Snapshot.
func (c *CPU) restore(s Snapshot) {
	c.A, c.F = s.A, s.F&allFlags
	c.B, c.C = s.B, s.C
	c.D, c.E = s.D, s.E
	c.H, c.L = s.H, s.L
	c.SP, c.PC = s.SP, s.PC
	c.cycles = s.Cycles
	c.ime = s.IME
	c.halted = s.Halted
}

var _ types.Stater = (*CPU)(nil)

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - A, F, B, C, D, E, H, L (uint8)
//   - SP, PC (uint16)
//   - Cycles (uint64)
//   - IME, Halted (bool)
func (c *CPU) Save(st *types.State) {
	s := c.Snapshot()
	for _, r := range []uint8{s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L} {
		st.Write8(r)
	}
	st.Write16(s.SP)
	st.Write16(s.PC)
	st.Write64(s.Cycles)
	st.WriteBool(s.IME)
	st.WriteBool(s.Halted)
}

// Load implements the types.Stater interface. Nothing is changed if
// the state is truncated.
func (c *CPU) Load(st *types.State) {
	var s Snapshot
	for _, r := range []*uint8{&s.A, &s.F, &s.B, &s.C, &s.D, &s.E, &s.H, &s.L} {
		*r = st.Read8()
	}
	s.SP = st.Read16()
	s.PC = st.Read16()
	s.Cycles = st.Read64()
	s.IME = st.ReadBool()
	s.Halted = st.ReadBool()
	if st.Err() != nil {
		return
	}
	c.restore(s)
}
