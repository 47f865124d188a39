package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestInstruction_Load(t *testing.T) {
	// 0x40 - 0x7F - LD r,r'
	for dst := Register(0); dst < 8; dst++ {
		for src := Register(0); src < 8; src++ {
			opcode := 0x40 | uint8(dst)<<3 | uint8(src)
			if dst == RegF || src == RegF {
				continue
			}
			testInstruction(t, InstructionSet[opcode].Name(), opcode, func(t *testing.T, c *CPU, _ *mmu.MMU) {
				c.Write8(src, 0x42)
				step(t, c)
				if c.Read8(dst) != 0x42 {
					t.Errorf("expected %s to be 0x42, got %02X", dst, c.Read8(dst))
				}
			})
		}
	}
	testInstruction(t, "LD (BC),A", 0x02, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.A = 0x42
		c.BC.SetUint16(0xC234)
		step(t, c)
		if bus.ReadByte(0xC234) != 0x42 {
			t.Errorf("expected 0x42 to be written to C234, got %02X", bus.ReadByte(0xC234))
		}
	})
	testInstruction(t, "LD (HL),d8", 0x36, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.HL.SetUint16(0xC000)
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if bus.ReadByte(0xC000) != 0x99 {
			t.Errorf("expected 0x99 at C000, got %02X", bus.ReadByte(0xC000))
		}
	}, 0x99)
	testInstruction(t, "LD (a16),SP", 0x08, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.SP = 0xBEEF
		step(t, c)
		if bus.ReadByte(0xC100) != 0xEF || bus.ReadByte(0xC101) != 0xBE {
			t.Errorf("expected EF BE at C100, got %02X %02X", bus.ReadByte(0xC100), bus.ReadByte(0xC101))
		}
	}, 0x00, 0xC1)
	testInstruction(t, "LD A,(a16)", 0xFA, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		bus.WriteByte(0xC100, 0x24)
		step(t, c)
		if c.A != 0x24 {
			t.Errorf("expected A=24, got %02X", c.A)
		}
	}, 0x00, 0xC1)
	testInstruction(t, "LDH (a8),A", 0xE0, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.A = 0x42
		step(t, c)
		if bus.ReadByte(0xFF80) != 0x42 {
			t.Errorf("expected 0x42 at FF80, got %02X", bus.ReadByte(0xFF80))
		}
	}, 0x80)
	testInstruction(t, "LD A,(C)", 0xF2, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.C = 0x85
		bus.WriteByte(0xFF85, 0x24)
		step(t, c)
		if c.A != 0x24 {
			t.Errorf("expected A=24, got %02X", c.A)
		}
	})
	testInstruction(t, "LD SP,HL", 0xF9, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		c.HL.SetUint16(0xDFF0)
		step(t, c)
		if c.SP != 0xDFF0 {
			t.Errorf("expected SP=DFF0, got %04X", c.SP)
		}
	})
}

func TestInstruction_AutoIncrement(t *testing.T) {
	testInstruction(t, "LD (HL+),A", 0x22, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.A = 0x42
		c.HL.SetUint16(0xC000)
		step(t, c)
		if bus.ReadByte(0xC000) != 0x42 || c.HL.Uint16() != 0xC001 {
			t.Errorf("expected (C000)=42 HL=C001, got %02X %04X", bus.ReadByte(0xC000), c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A,(HL+)", 0x2A, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		bus.WriteByte(0xC000, 0x24)
		bus.WriteByte(0xC001, 0x99)
		c.HL.SetUint16(0xC000)
		step(t, c)
		if c.A != 0x24 || c.HL.Uint16() != 0xC001 {
			t.Errorf("expected A=24 HL=C001, got %02X %04X", c.A, c.HL.Uint16())
		}
	})
	testInstruction(t, "LD (HL-),A", 0x32, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.A = 0x42
		c.HL.SetUint16(0xC001)
		step(t, c)
		if bus.ReadByte(0xC001) != 0x42 || c.HL.Uint16() != 0xC000 {
			t.Errorf("expected (C001)=42 HL=C000, got %02X %04X", bus.ReadByte(0xC001), c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A,(HL-) wraps", 0x3A, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		bus.WriteByte(0x0000, 0x3A)
		c.HL.SetUint16(0x0000)
		step(t, c)
		if c.A != 0x3A || c.HL.Uint16() != 0xFFFF {
			t.Errorf("expected A=3A HL=FFFF, got %02X %04X", c.A, c.HL.Uint16())
		}
	})
}
