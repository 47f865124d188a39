// Package mmu provides a flat memory bus for running the CPU against
// test ROMs. The ROM is mapped read-only at 0x0000 - 0x7FFF, the rest
// of the address space is plain RAM apart from the few registers the
// test ROMs depend on.
package mmu

import (
	"io"

	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// SB is the serial transfer data register.
	SB uint16 = 0xFF01
	// SC is the serial transfer control register.
	SC uint16 = 0xFF02
	// LY is the LCD Y coordinate register.
	LY uint16 = 0xFF44

	// romEnd is the first address past the cartridge ROM.
	romEnd = 0x8000
	// echoStart - echoEnd mirrors 0xC000 - 0xDDFF.
	echoStart = 0xE000
	echoEnd   = 0xFE00
)

var _ types.Stater = (*MMU)(nil)

// Opt is a function that modifies an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger of the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithSerial copies every byte sent over the serial port to w.
// Test ROMs report their results this way.
func WithSerial(w io.Writer) Opt {
	return func(m *MMU) {
		m.serial = w
	}
}

// WithLY fixes the value read from LY. Reference traces are usually
// recorded with LY stuck at 0x90, so that ROMs waiting for VBlank
// carry on without a PPU.
func WithLY(v uint8) Opt {
	return func(m *MMU) {
		m.ly = &v
	}
}

// MMU is a flat 64kB memory bus.
type MMU struct {
	raw [0x10000]uint8

	// 0xFF0F, 0xFFFF - interrupt flag and enable registers
	irq *interrupts.Service

	Log log.Logger

	readOnly bool
	serial   io.Writer
	ly       *uint8
}

// NewMMU returns a new MMU routing the interrupt registers to irq.
func NewMMU(irq *interrupts.Service, opts ...Opt) *MMU {
	m := &MMU{
		irq: irq,
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadROM maps rom from 0x0000. ROMs larger than 32kB are truncated,
// as there is no bank controller, and the ROM area becomes read-only.
func (m *MMU) LoadROM(rom []byte) {
	n := copy(m.raw[:romEnd], rom)
	if len(rom) > romEnd {
		m.Log.Infof("mmu: ROM of %d bytes truncated to %d", len(rom), romEnd)
	}
	m.Log.Debugf("mmu: loaded %d bytes of ROM", n)
	m.readOnly = true
}

// Write copies data into memory at address, regardless of the ROM
// being read-only. It is used to place test programs.
func (m *MMU) Write(address uint16, data []byte) {
	for i, b := range data {
		m.raw[address+uint16(i)] = b
	}
}

// ReadByte returns the value at the given address.
func (m *MMU) ReadByte(address uint16) uint8 {
	switch {
	case address == interrupts.FlagAddress:
		return m.irq.ReadFlag()
	case address == interrupts.EnableAddress:
		return m.irq.Enable
	case address == LY && m.ly != nil:
		return *m.ly
	case address >= echoStart && address < echoEnd:
		return m.raw[address-0x2000]
	}
	return m.raw[address]
}

// WriteByte writes the value to the given address.
func (m *MMU) WriteByte(address uint16, value uint8) {
	switch {
	case address < romEnd && m.readOnly:
		// bank controller writes have nowhere to go
		return
	case address == interrupts.FlagAddress:
		m.irq.WriteFlag(value)
		return
	case address == interrupts.EnableAddress:
		m.irq.Enable = value
		return
	case address == SC:
		m.transfer(value)
	case address >= echoStart && address < echoEnd:
		address -= 0x2000
	}
	m.raw[address] = value
}

// transfer completes a serial transfer started with the internal
// clock immediately, as if nothing was connected.
func (m *MMU) transfer(sc uint8) {
	if sc != 0x81 {
		return
	}
	if m.serial != nil {
		if _, err := m.serial.Write([]byte{m.raw[SB]}); err != nil {
			m.Log.Errorf("mmu: serial: %v", err)
		}
	}
	m.raw[SB] = 0xFF
	m.irq.Request(interrupts.SerialFlag)
}

// Save writes the contents of memory to st. The interrupt registers
// are saved by the interrupt service.
func (m *MMU) Save(st *types.State) {
	st.WriteData(m.raw[:])
}

// Load restores memory saved by Save.
func (m *MMU) Load(st *types.State) {
	st.ReadData(m.raw[:])
}
