package types

import "errors"

// ErrShortState is reported by State.Err when a read ran past the end
// of the serialised data.
var ErrShortState = errors.New("state: unexpected end of data")

// State is a serialised machine state. Values are written in order and
// read back in the same order, 16-bit values little-endian.
type State struct {
	raw          []byte // raw state data
	readPosition int    // current read position
	err          error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state for writing.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take returns the next n unread bytes, or nil once the data is
// exhausted.
func (s *State) take(n int) []byte {
	if s.err != nil || s.readPosition+n > len(s.raw) {
		s.err = ErrShortState
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	b := s.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *State) Read16() uint16 {
	b := s.take(2)
	if b == nil {
		return 0
	}
	return Uint16(b[1], b[0])
}

// ReadData fills p with the next len(p) bytes.
func (s *State) ReadData(p []byte) {
	if b := s.take(len(p)); b != nil {
		copy(p, b)
	}
}

// Err returns ErrShortState if any read ran out of data.
func (s *State) Err() error {
	return s.err
}

func (s *State) Bytes() []byte {
	return s.raw
}
