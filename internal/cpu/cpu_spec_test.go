package cpu_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
)

var _ = Describe("CPU", func() {
	var (
		irq *interrupts.Service
		bus *mmu.MMU
		c   *cpu.CPU
	)

	// run loads program at 0x0100 and steps n instructions
	run := func(n int, program ...uint8) {
		bus.Write(0x0100, program)
		for i := 0; i < n; i++ {
			_, err := c.Step()
			Expect(err).NotTo(HaveOccurred())
		}
	}

	BeforeEach(func() {
		irq = interrupts.NewService()
		bus = mmu.NewMMU(irq)
		c = cpu.NewCPU(bus, cpu.WithRegisters(cpu.DMGBoot))
	})

	It("should start from the post-boot state", func() {
		s := c.Snapshot()
		Expect(s.PC).To(Equal(uint16(0x0100)))
		Expect(s.SP).To(Equal(uint16(0xFFFE)))
		Expect(s.A).To(Equal(uint8(0x01)))
		Expect(s.F).To(Equal(uint8(0xB0)))
		Expect(c.HL.Uint16()).To(Equal(uint16(0x014D)))
	})

	Describe("a counting loop", func() {
		// LD B,5; loop: DEC B; JR NZ,loop; HALT
		BeforeEach(func() {
			bus.Write(0x0100, []uint8{0x06, 0x05, 0x05, 0x20, 0xFD, 0x76})
		})

		It("should leave the loop once B reaches zero", func() {
			for !c.Halted() {
				_, err := c.Step()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(c.B).To(BeZero())
			Expect(c.PC).To(Equal(uint16(0x0106)))
		})

		It("should charge taken and not-taken branches differently", func() {
			for !c.Halted() {
				_, err := c.Step()
				Expect(err).NotTo(HaveOccurred())
			}
			// LD 8, 5x DEC 4, 4x JR taken 12, 1x JR not taken 8, HALT 4
			Expect(c.Cycles()).To(Equal(uint64(8 + 5*4 + 4*12 + 8 + 4)))
		})
	})

	Describe("the stack", func() {
		It("should restore a pair and SP after PUSH and POP", func() {
			c.DE.SetUint16(0x1357)
			run(3, 0xD5, 0x11, 0x00, 0x00, 0xD1) // PUSH DE; LD DE,0; POP DE
			Expect(c.DE.Uint16()).To(Equal(uint16(0x1357)))
			Expect(c.SP).To(Equal(uint16(0xFFFE)))
		})

		It("should return from a subroutine", func() {
			bus.Write(0x0200, []uint8{0x3C, 0xC9}) // INC A; RET
			run(3, 0xCD, 0x00, 0x02)
			Expect(c.PC).To(Equal(uint16(0x0103)))
			Expect(c.A).To(Equal(uint8(0x02)))
		})
	})

	Describe("interrupts", func() {
		It("should wake from HALT and run the handler", func() {
			bus.Write(0x0050, []uint8{0x3E, 0x42, 0xD9}) // LD A,42; RETI
			bus.WriteByte(interrupts.EnableAddress, interrupts.TimerFlag)
			run(2, 0xFB, 0x76) // EI; HALT
			Expect(c.Halted()).To(BeTrue())

			irq.Request(interrupts.TimerFlag)
			Expect(irq.Dispatch(c)).To(Equal(uint8(20)))
			Expect(c.PC).To(Equal(uint16(0x0050)))
			Expect(c.InterruptsEnabled()).To(BeFalse())

			for i := 0; i < 2; i++ {
				_, err := c.Step()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(c.A).To(Equal(uint8(0x42)))
			Expect(c.PC).To(Equal(uint16(0x0102)))
			Expect(c.InterruptsEnabled()).To(BeTrue())
		})
	})

	Describe("errors", func() {
		It("should stop at an illegal opcode", func() {
			bus.Write(0x0100, []uint8{0x00, 0xFC})
			_, err := c.Step()
			Expect(err).NotTo(HaveOccurred())
			_, err = c.Step()
			Expect(errors.Is(err, cpu.ErrInvalidOpcode)).To(BeTrue())

			var opErr *cpu.OpcodeError
			Expect(errors.As(err, &opErr)).To(BeTrue())
			Expect(opErr.PC).To(Equal(uint16(0x0101)))
			Expect(c.PC).To(Equal(uint16(0x0101)))
		})
	})
})

var _ = Describe("Half carry", func() {
	DescribeTable("ADD, ADC, SUB and SBC",
		func(opcode, a, b uint8, carry bool, want uint8, half bool) {
			bus := mmu.NewMMU(interrupts.NewService())
			bus.Write(0x0100, []uint8{opcode})
			c := cpu.NewCPU(bus, cpu.WithPC(0x0100))
			c.A, c.B = a, b
			c.SetFlag(cpu.FlagCarry, carry)

			_, err := c.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(c.A).To(Equal(want))
			Expect(c.Flag(cpu.FlagHalfCarry)).To(Equal(half))
		},
		Entry("ADD without carry out of bit 3", uint8(0x80), uint8(0x07), uint8(0x08), false, uint8(0x0F), false),
		Entry("ADD with carry out of bit 3", uint8(0x80), uint8(0x08), uint8(0x08), false, uint8(0x10), true),
		Entry("ADC where only the carry in overflows", uint8(0x88), uint8(0x07), uint8(0x08), true, uint8(0x10), true),
		Entry("ADC with 0xF operand and carry in", uint8(0x88), uint8(0x00), uint8(0x0F), true, uint8(0x10), true),
		Entry("SUB without borrow", uint8(0x90), uint8(0x18), uint8(0x08), false, uint8(0x10), false),
		Entry("SUB with borrow", uint8(0x90), uint8(0x10), uint8(0x01), false, uint8(0x0F), true),
		Entry("SBC where only the carry in borrows", uint8(0x98), uint8(0x18), uint8(0x08), true, uint8(0x0F), true),
	)
})
