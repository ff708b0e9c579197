package emulator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	stateMagic   = "SM83"
	stateVersion = 1
	// magic, version, registers, memory, checksum
	stateSize = len(stateMagic) + 1 + 12 + mmu.Size + 8
)

// ErrInvalidState is returned when loading data that is not a state
// saved by SaveState.
var ErrInvalidState = errors.New("emulator: invalid state")

// SaveState serialises the CPU and the whole bus. The result is
// trailed by an xxhash of everything before it.
func (e *Emulator) SaveState() []byte {
	s := types.NewState()
	s.WriteData([]byte(stateMagic))
	s.Write8(stateVersion)
	e.CPU.Save(s)
	e.MMU.Save(s)

	return binary.LittleEndian.AppendUint64(s.Bytes(), xxhash.Sum64(s.Bytes()))
}

// LoadState restores a state saved by SaveState. Nothing is changed
// unless the whole state is valid. The loaded state does not replace
// the state Reset returns to.
func (e *Emulator) LoadState(data []byte) error {
	if len(data) != stateSize {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrInvalidState, len(data), stateSize)
	}
	body, sum := data[:stateSize-8], binary.LittleEndian.Uint64(data[stateSize-8:])
	if xxhash.Sum64(body) != sum {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidState)
	}

	s := types.StateFromBytes(body)
	header := make([]byte, len(stateMagic))
	s.ReadData(header)
	if !bytes.Equal(header, []byte(stateMagic)) {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidState, header)
	}
	if v := s.Read8(); v != stateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidState, v)
	}

	e.CPU.Load(s)
	e.MMU.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidState, err)
	}
	e.status = Paused
	return nil
}
