package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// Snapshot is a copy of the CPU state at a point between two
// instructions. It shares nothing with the CPU it was taken from.
type Snapshot struct {
	Registers
	PC uint16
	SP uint16

	// MemoryHash is the checksum of the bus, if the bus can provide one.
	MemoryHash uint64
}

// checksummer is implemented by buses that can fingerprint their contents.
type checksummer interface {
	Checksum() uint64
}

// Snapshot returns a copy of the current CPU state.
func (c *CPU) Snapshot() Snapshot {
	s := c.state()
	if sum, ok := c.bus.(checksummer); ok {
		s.MemoryHash = sum.Checksum()
	}
	return s
}

// Restore loads the registers, PC and SP from s. The bus is not touched.
func (c *CPU) Restore(s Snapshot) {
	c.Registers = s.Registers
	c.PC = s.PC
	c.SP = s.SP
}

func (c *CPU) state() Snapshot {
	return Snapshot{Registers: c.Registers, PC: c.PC, SP: c.SP}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		s.A, s.F.Byte(), s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC)
}

var _ types.Stater = (*CPU)(nil)

// Load restores the registers, SP and PC from s.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = FlagsFromByte(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
}

// Save appends the registers, SP and PC to s.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F.Byte())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
}
