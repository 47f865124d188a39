package types

import (
	"errors"
	"os"
)

// ErrShortState is reported by State.Err when a read ran past
// the end of the serialised data.
var ErrShortState = errors.New("state: unexpected end of data")

// State is a flat little-endian buffer used to save and
// restore component state between runs.
type State struct {
	raw          []byte
	readPosition int
	err          error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{raw: make([]byte, 0, 32)}
}

// StateFromBytes creates a new state reading from raw.
func StateFromBytes(raw []byte) *State {
	return &State{raw: raw}
}

// StateFromFile reads a state previously written with SaveToFile.
func StateFromFile(filename string) (*State, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromBytes(raw), nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write64(value uint64) {
	for i := 0; i < 8; i++ {
		s.raw = append(s.raw, byte(value>>(8*i)))
	}
}

func (s *State) WriteBool(value bool) {
	if value {
		s.Write8(1)
	} else {
		s.Write8(0)
	}
}

// WriteData appends data verbatim.
func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// next returns the next n bytes, or nil once the data is exhausted.
func (s *State) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrShortState
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	if b := s.next(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *State) Read16() uint16 {
	if b := s.next(2); b != nil {
		return uint16(b[0]) | uint16(b[1])<<8
	}
	return 0
}

func (s *State) Read64() uint64 {
	b := s.next(8)
	if b == nil {
		return 0
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// ReadData fills data from the state.
func (s *State) ReadData(data []byte) {
	if b := s.next(len(data)); b != nil {
		copy(data, b)
	}
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// Err returns the first error encountered while reading.
func (s *State) Err() error {
	return s.err
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
