package trace_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/trace"
)

// program counts B down from 3 and halts.
var program = []uint8{0x06, 0x03, 0x05, 0x20, 0xFD, 0x76}

func runTo(t cpu.Tracer) {
	bus := mmu.NewMMU(interrupts.NewService())
	bus.Write(0x0100, program)
	c := cpu.NewCPU(bus, cpu.WithRegisters(cpu.DMGBoot), cpu.WithTracer(t))
	for !c.Halted() {
		_, err := c.Step()
		Expect(err).NotTo(HaveOccurred())
	}
}

var _ = Describe("Writer", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "trace")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("should write a line per instruction", func() {
		var buf bytes.Buffer
		w := trace.NewWriter(&buf, trace.Doctor)
		runTo(w)
		Expect(w.Close()).To(Succeed())

		// LD, 3x DEC, 3x JR, HALT
		Expect(w.Lines()).To(Equal(8))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(8))
		Expect(lines[0]).To(HavePrefix("A:01 F:B0"))
		Expect(lines[0]).To(HaveSuffix("PC:0100 PCMEM:06,03,05,20"))
		Expect(lines[7]).To(ContainSubstring("PC:0105"))
	})

	It("should produce the same checksum for the same run", func() {
		a := trace.NewWriter(io.Discard, trace.Doctor)
		b := trace.NewWriter(io.Discard, trace.Doctor)
		runTo(a)
		runTo(b)
		Expect(a.Sum()).To(Equal(b.Sum()))

		c := trace.NewWriter(io.Discard, trace.Extended)
		runTo(c)
		Expect(c.Sum()).NotTo(Equal(a.Sum()))
	})

	DescribeTable("round trips through a file",
		func(name string) {
			path := filepath.Join(dir, name)
			w, err := trace.Create(path, trace.Doctor)
			Expect(err).NotTo(HaveOccurred())
			runTo(w)
			Expect(w.Close()).To(Succeed())

			var plain bytes.Buffer
			pw := trace.NewWriter(&plain, trace.Doctor)
			runTo(pw)
			Expect(pw.Flush()).To(Succeed())

			r, err := trace.Open(path)
			Expect(err).NotTo(HaveOccurred())
			defer r.Close()

			m, err := trace.Compare(&plain, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeNil())
		},
		Entry("plain text", "trace.log"),
		Entry("brotli", "trace.log.br"),
	)

	It("should report the first differing line", func() {
		var expected, actual bytes.Buffer
		e := trace.NewWriter(&expected, trace.Doctor)
		runTo(e)
		Expect(e.Flush()).To(Succeed())

		program[1] = 0x02 // one fewer iteration
		DeferCleanup(func() { program[1] = 0x03 })
		a := trace.NewWriter(&actual, trace.Doctor)
		runTo(a)
		Expect(a.Flush()).To(Succeed())

		m, err := trace.Compare(&expected, &actual)
		Expect(err).NotTo(HaveOccurred())
		Expect(m).NotTo(BeNil())
		Expect(m.Line).To(Equal(1))
		Expect(m.Expected).To(HaveSuffix("PCMEM:06,03,05,20"))
		Expect(m.Actual).To(HaveSuffix("PCMEM:06,02,05,20"))
	})
})
