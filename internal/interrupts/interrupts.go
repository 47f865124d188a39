package interrupts

import (
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register when certain
	// conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when a selected button is
	// pressed.
	JoypadFlag = types.Bit4
)

const (
	// FlagAddress is the address of the interrupt Flag register (IF).
	FlagAddress uint16 = 0xFF0F
	// EnableAddress is the address of the interrupt Enable register (IE).
	EnableAddress uint16 = 0xFFFF
)

// CPU is the part of the CPU the Service drives when dispatching.
type CPU interface {
	InterruptsEnabled() bool
	Halted() bool
	Resume()
	Interrupt(vector uint16)
}

// Service is the interrupt service, used to request
// interrupts and to dispatch them to the CPU.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// and the IME is set, the CPU will jump to the interrupt
// vector, and the corresponding bit in the Flag register
// will be cleared.
//
// The IME is owned by the CPU, and set by the DI, EI
// and RETI instructions.
type Service struct {
	Flag   uint8 // interrupt Flag (IF)
	Enable uint8 // interrupt Enable (IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// ReadFlag returns the IF register as seen by the bus.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0 // the upper 3 bits are always set
}

// WriteFlag sets the IF register.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F // only the first 5 bits are used
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector returns the vector of the highest priority
// interrupt that is requested and enabled, or 0 if there
// is none. This function will also clear the
// corresponding bit in the Flag register.
func (s *Service) Vector() uint16 {
	if !s.HasInterrupts() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		// get the flag for the current interrupt
		flag := uint8(1 << i)

		// check if the interrupt is requested and enabled
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			// clear the interrupt flag and return the vector
			s.Flag ^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}

// Dispatch is called between instructions. A pending
// interrupt wakes a halted CPU regardless of the IME, and
// is serviced if the IME is set. It returns the number of
// clock ticks spent servicing.
func (s *Service) Dispatch(cpu CPU) uint8 {
	if !s.HasInterrupts() {
		return 0
	}
	if cpu.Halted() {
		cpu.Resume()
	}
	if !cpu.InterruptsEnabled() {
		return 0
	}
	cpu.Interrupt(s.Vector())
	return 20
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
