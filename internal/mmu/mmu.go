// Package mmu provides the memory bus for the SM83 CPU. The bus is a
// flat 64kB address space, it has no knowledge of cartridges, video RAM
// or I/O registers. Embedders that need peripherals map them in through
// ReserveAddress, or by wrapping the bus in their own IOBus.
package mmu

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/types"
)

// Size is the size of the address space in bytes.
const Size = 0x10000

// IOBus is the interface the CPU uses to access memory. Every address in
// the 16-bit space must be readable and writable. The bus is byte-wide:
// the CPU composes 16-bit accesses itself, so MMU.Read16 and MMU.Write16
// only serve embedders and tests.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// WriteHook intercepts a write to a reserved address. The returned value
// is what ends up stored on the bus.
type WriteHook func(value uint8) uint8

// MMU is a flat 64kB memory bus. The zero value is ready to use.
type MMU struct {
	raw [Size]uint8

	hooks map[uint16]WriteHook
}

var _ IOBus = (*MMU)(nil)

// NewMMU returns a new MMU with every address zeroed.
func NewMMU() *MMU {
	return &MMU{
		hooks: make(map[uint16]WriteHook),
	}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the given byte to the given address, passing it through
// any hook reserved for that address first.
func (m *MMU) Write(address uint16, value uint8) {
	if hook, ok := m.hooks[address]; ok {
		value = hook(value)
	}
	m.raw[address] = value
}

// Read16 reads a little-endian word: the low byte at address, the high
// byte at address+1. The second address wraps around at 0xFFFF.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes a little-endian word, mirroring Read16.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// LoadImage copies image onto the bus starting at offset. Addresses past
// 0xFFFF wrap around to 0x0000. Hooks are bypassed, as loading an image
// is not a CPU write.
func (m *MMU) LoadImage(offset uint16, image []byte) error {
	if len(image) > Size {
		return fmt.Errorf("image of %d bytes does not fit in the %d byte address space", len(image), Size)
	}
	for i, b := range image {
		m.raw[offset+uint16(i)] = b
	}
	return nil
}

// ReserveAddress registers a hook that is called for every write to
// address. Passing a nil hook removes the reservation.
func (m *MMU) ReserveAddress(address uint16, hook WriteHook) {
	if hook == nil {
		delete(m.hooks, address)
		return
	}
	if m.hooks == nil {
		m.hooks = make(map[uint16]WriteHook)
	}
	m.hooks[address] = hook
}

// Dump returns a copy of length bytes starting at address, wrapping
// around the end of the address space. length is clamped to between
// zero and Size.
func (m *MMU) Dump(address uint16, length int) []byte {
	length = min(max(length, 0), Size)
	out := make([]byte, length)
	for i := range out {
		out[i] = m.raw[address+uint16(i)]
	}
	return out
}

// Checksum returns the xxhash of the entire address space. Two buses
// with equal checksums almost certainly hold the same contents.
func (m *MMU) Checksum() uint64 {
	return xxhash.Sum64(m.raw[:])
}

// Reset zeroes the address space. Reserved addresses are kept.
func (m *MMU) Reset() {
	m.raw = [Size]uint8{}
}

var _ types.Stater = (*MMU)(nil)

// Load restores the whole address space from s, bypassing write hooks.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save appends the whole address space to s.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
