package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestInstruction_Jump(t *testing.T) {
	testInstruction(t, "JR r8 backwards", 0x18, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		if cycles := step(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		// P + 2 - 2
		if c.PC != testPC {
			t.Errorf("expected PC %04X, got %04X", testPC, c.PC)
		}
	}, 0xFE)
	testInstruction(t, "JR r8 forwards", 0x18, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		step(t, c)
		if c.PC != testPC+2+0x10 {
			t.Errorf("expected PC %04X, got %04X", testPC+2+0x10, c.PC)
		}
	}, 0x10)
	testInstruction(t, "JR NZ,r8 taken", 0x20, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		if cycles := step(t, c); cycles != 12 || c.PC != testPC+7 {
			t.Errorf("expected 12 cycles to %04X, got %d to %04X", testPC+7, cycles, c.PC)
		}
	}, 0x05)
	testInstruction(t, "JR NZ,r8 not taken", 0x20, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		c.setFlag(FlagZero)
		if cycles := step(t, c); cycles != 8 || c.PC != testPC+2 {
			t.Errorf("expected 8 cycles to %04X, got %d to %04X", testPC+2, cycles, c.PC)
		}
	}, 0x05)
	testInstruction(t, "JP a16", 0xC3, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		if cycles := step(t, c); cycles != 16 || c.PC != 0x0150 {
			t.Errorf("expected 16 cycles to 0150, got %d to %04X", cycles, c.PC)
		}
	}, 0x50, 0x01)
	testInstruction(t, "JP C,a16 not taken", 0xDA, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		if cycles := step(t, c); cycles != 12 || c.PC != testPC+3 {
			t.Errorf("expected 12 cycles to %04X, got %d to %04X", testPC+3, cycles, c.PC)
		}
	}, 0x50, 0x01)
	testInstruction(t, "JP C,a16 taken", 0xDA, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		c.setFlag(FlagCarry)
		if cycles := step(t, c); cycles != 16 || c.PC != 0x0150 {
			t.Errorf("expected 16 cycles to 0150, got %d to %04X", cycles, c.PC)
		}
	}, 0x50, 0x01)
	testInstruction(t, "JP (HL)", 0xE9, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		c.HL.SetUint16(0x4000)
		if cycles := step(t, c); cycles != 4 || c.PC != 0x4000 {
			t.Errorf("expected 4 cycles to 4000, got %d to %04X", cycles, c.PC)
		}
	})
}

func TestInstruction_Call(t *testing.T) {
	testInstruction(t, "CALL a16", 0xCD, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.SP = 0xD000
		if cycles := step(t, c); cycles != 24 {
			t.Errorf("expected 24 cycles, got %d", cycles)
		}
		if c.PC != 0x1234 || c.SP != 0xCFFE {
			t.Errorf("expected PC 1234 SP CFFE, got %04X %04X", c.PC, c.SP)
		}
		// return address is P+3
		if hi, lo := bus.ReadByte(0xCFFF), bus.ReadByte(0xCFFE); hi != 0x01 || lo != 0x03 {
			t.Errorf("expected 01 03 on the stack, got %02X %02X", hi, lo)
		}
	}, 0x34, 0x12)
	testInstruction(t, "CALL NC,a16 not taken", 0xD4, func(t *testing.T, c *CPU, _ *mmu.MMU) {
		c.setFlag(FlagCarry)
		if cycles := step(t, c); cycles != 12 || c.PC != testPC+3 || c.SP != 0xFFFE {
			t.Errorf("expected 12 cycles to %04X, got %d to %04X SP %04X", testPC+3, cycles, c.PC, c.SP)
		}
	}, 0x34, 0x12)
	testInstruction(t, "CALL then RET", 0xCD, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		bus.Write(0x0200, []uint8{0xC9})
		step(t, c)
		if cycles := step(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != testPC+3 || c.SP != 0xFFFE {
			t.Errorf("expected PC %04X SP FFFE, got %04X %04X", testPC+3, c.PC, c.SP)
		}
	}, 0x00, 0x02)
	testInstruction(t, "RET Z", 0xC8, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.SP = 0xC000
		bus.Write(0xC000, []uint8{0x00, 0x40})
		if cycles := step(t, c); cycles != 8 || c.PC != testPC+1 {
			t.Errorf("expected 8 cycles to %04X, got %d to %04X", testPC+1, cycles, c.PC)
		}
		c.PC = testPC
		c.setFlag(FlagZero)
		if cycles := step(t, c); cycles != 20 || c.PC != 0x4000 || c.SP != 0xC002 {
			t.Errorf("expected 20 cycles to 4000, got %d to %04X", cycles, c.PC)
		}
	})
	testInstruction(t, "RETI", 0xD9, func(t *testing.T, c *CPU, bus *mmu.MMU) {
		c.SP = 0xC000
		bus.Write(0xC000, []uint8{0x00, 0x40})
		step(t, c)
		if c.PC != 0x4000 || !c.InterruptsEnabled() {
			t.Errorf("expected to return to 4000 with interrupts enabled, got %04X %t", c.PC, c.InterruptsEnabled())
		}
	})
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		testInstruction(t, InstructionSet[0xC7+i*8].Name(), 0xC7+i*8, func(t *testing.T, c *CPU, bus *mmu.MMU) {
			if cycles := step(t, c); cycles != 16 || c.PC != vector {
				t.Errorf("expected 16 cycles to %04X, got %d to %04X", vector, cycles, c.PC)
			}
			if ret := uint16(bus.ReadByte(0xFFFC)) | uint16(bus.ReadByte(0xFFFD))<<8; ret != testPC+1 {
				t.Errorf("expected return address %04X, got %04X", testPC+1, ret)
			}
		})
	}
}

func TestInstruction_Stack(t *testing.T) {
	for _, opcodes := range [][2]uint8{{0xC5, 0xC1}, {0xD5, 0xD1}, {0xE5, 0xE1}, {0xF5, 0xF1}} {
		push, pop := InstructionSet[opcodes[0]], InstructionSet[opcodes[1]]
		testInstruction(t, push.Name()+"/"+pop.Name(), opcodes[0], func(t *testing.T, c *CPU, bus *mmu.MMU) {
			bus.Write(testPC+1, []uint8{0x01, 0x00, 0x00, opcodes[1]}) // LD BC,0000 in between
			pair := push.Dst.pair
			c.Write16(pair, 0xBEF0)
			sp := c.SP

			step(t, c)
			if c.SP != sp-2 || bus.ReadByte(sp-1) != 0xBE || bus.ReadByte(sp-2) != 0xF0 {
				t.Fatalf("expected BEF0 pushed below %04X", sp)
			}
			step(t, c)
			if pair != PairBC {
				c.Write16(pair, 0)
			}
			step(t, c)
			if c.Read16(pair) != 0xBEF0 || c.SP != sp {
				t.Errorf("expected %s=BEF0 SP=%04X, got %04X %04X", pair, sp, c.Read16(pair), c.SP)
			}
		})
	}
}
