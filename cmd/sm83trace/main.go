package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/trace"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	steps := flag.Int("steps", 100000, "The number of steps to run for")
	out := flag.String("out", "", "The file to write the trace to, compressed if it ends in .br")
	compare := flag.String("compare", "", "The reference log to compare the trace against")
	boot := flag.Bool("boot", true, "Start from the DMG post-boot register state")
	state := flag.String("state", "", "The state file to resume from")
	save := flag.String("save", "", "The file to save the state to once finished")
	format := flag.String("format", "doctor", "The trace format. Can be doctor or extended")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithWriter(os.Stderr, *verbose)
	if *romFile == "" {
		logger.Errorf("no rom file given")
		flag.Usage()
		os.Exit(2)
	}

	f, err := trace.ParseFormat(*format)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	cfg := config{
		rom:     *romFile,
		steps:   *steps,
		out:     *out,
		compare: *compare,
		boot:    *boot,
		state:   *state,
		save:    *save,
		format:  f,
	}
	if err := run(logger, cfg); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type config struct {
	rom, out, compare string
	state, save       string
	steps             int
	boot              bool
	format            trace.Format
}

func run(logger log.Logger, cfg config) error {
	rom, err := utils.LoadFile(cfg.rom)
	if err != nil {
		return err
	}

	irq := interrupts.NewService()
	bus := mmu.NewMMU(irq,
		mmu.WithLogger(logger),
		mmu.WithSerial(os.Stdout),
		// test roms wait for vblank before running
		mmu.WithLY(0x90),
	)
	bus.LoadROM(rom)

	var w *trace.Writer
	if cfg.out != "" {
		if w, err = trace.Create(cfg.out, cfg.format); err != nil {
			return err
		}
	} else {
		w = trace.NewWriter(io.Discard, cfg.format)
	}
	defer w.Close()

	opts := []cpu.Opt{cpu.WithLogger(logger), cpu.WithTracer(w)}
	if cfg.boot {
		opts = append(opts, cpu.WithRegisters(cpu.DMGBoot))
	}
	c := cpu.NewCPU(bus, opts...)

	// memory, interrupts and CPU are saved in that order
	components := []types.Stater{bus, irq, c}
	if cfg.state != "" {
		st, err := types.StateFromFile(cfg.state)
		if err != nil {
			return err
		}
		for _, s := range components {
			s.Load(st)
		}
		if err := st.Err(); err != nil {
			return fmt.Errorf("%s: %w", cfg.state, err)
		}
		logger.Infof("resumed from %s at PC %04X", cfg.state, c.PC)
	}

	start := time.Now()
	for i := 0; i < cfg.steps; i++ {
		if _, err := c.Step(); err != nil {
			var opErr *cpu.OpcodeError
			if errors.As(err, &opErr) {
				text, _ := cpu.Disassemble(bus, opErr.PC)
				logger.Errorf("stopped at %s after %d steps", text, i)
			}
			return err
		}
		irq.Dispatch(c)
	}
	if err := w.Close(); err != nil {
		return err
	}

	emulated := time.Duration(float64(c.Cycles()) / cpu.ClockSpeed * float64(time.Second))
	logger.Infof("ran %d instructions (%d cycles, %s emulated) in %s", w.Lines(), c.Cycles(), emulated, time.Since(start))
	// trace checksum, then the digest of the final state
	fmt.Printf("\n%016x %016x\n", w.Sum(), trace.Digest(c.Snapshot()))

	if cfg.save != "" {
		st := types.NewState()
		for _, s := range components {
			s.Save(st)
		}
		if err := st.SaveToFile(cfg.save); err != nil {
			return err
		}
	}

	if cfg.compare == "" {
		return nil
	}
	if cfg.out == "" {
		return errors.New("-compare requires -out")
	}
	return compareTrace(logger, cfg.compare, cfg.out)
}

func compareTrace(logger log.Logger, expected, actual string) error {
	exp, err := trace.Open(expected)
	if err != nil {
		return err
	}
	defer exp.Close()
	act, err := trace.Open(actual)
	if err != nil {
		return err
	}
	defer act.Close()

	m, err := trace.Compare(exp, act)
	if err != nil {
		return err
	}
	if m != nil {
		return fmt.Errorf("trace mismatch at %s", m)
	}
	logger.Infof("trace matches %s", expected)
	return nil
}
