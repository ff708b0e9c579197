package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

// newTestCPU returns a CPU in the post-boot state, with program loaded at
// its entry point 0x0100.
func newTestCPU(t *testing.T, program ...uint8) (*CPU, *mmu.MMU) {
	t.Helper()
	bus := mmu.NewMMU()
	require.NoError(t, bus.LoadImage(0x0100, program))
	return NewCPU(bus), bus
}

// step executes a single instruction and fails the test on a decode error.
func step(t *testing.T, c *CPU) Opcode {
	t.Helper()
	op, err := c.Step()
	require.NoError(t, err)
	return op
}

func TestNewCPU_PostBootState(t *testing.T) {
	c, _ := newTestCPU(t)

	assert.Equal(t, Register(0x01), c.A)
	assert.Equal(t, uint8(0xB0), c.F.Byte())
	assert.Equal(t, uint16(0x0013), c.BC())
	assert.Equal(t, uint16(0x00D8), c.DE())
	assert.Equal(t, uint16(0x014D), c.HL())
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x0100), c.PC)
}

func TestNewCPU_Options(t *testing.T) {
	bus := mmu.NewMMU()

	c := NewCPU(bus, WithBootROM())
	assert.Equal(t, Registers{}, c.Registers)
	assert.Equal(t, uint16(0), c.PC)
	assert.Equal(t, uint16(0), c.SP)

	c = NewCPU(bus, WithRegisters(Registers{A: 0x42, F: Flags{Carry: true}}), WithPC(0xC000), WithSP(0xDFFF))
	assert.Equal(t, Register(0x42), c.A)
	assert.True(t, c.F.Carry)
	assert.Equal(t, uint16(0xC000), c.PC)
	assert.Equal(t, uint16(0xDFFF), c.SP)
	assert.Same(t, bus, c.Bus())
}

func TestCPU_Step(t *testing.T) {
	// LD B, d8
	c, _ := newTestCPU(t, 0x06, 0x05)

	op := step(t, c)

	assert.Equal(t, Opcode{Code: 0x06}, op)
	assert.Equal(t, "LD B, d8", op.Name())
	assert.Equal(t, Register(0x05), c.B)
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestCPU_StepExtended(t *testing.T) {
	// SWAP A
	c, _ := newTestCPU(t, 0xCB, 0x37)
	c.A = 0xF1

	op := step(t, c)

	assert.Equal(t, Opcode{Code: 0x37, Extended: true}, op)
	assert.Equal(t, "0xCB 0x37", op.String())
	assert.Equal(t, "SWAP A", op.Name())
	assert.Equal(t, Register(0x1F), c.A)
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestCPU_StepUnsupported(t *testing.T) {
	for _, opcode := range []uint8{0x10, 0x76, 0xD3, 0xD9, 0xF3, 0xFB, 0xFD} {
		c, bus := newTestCPU(t, opcode, 0x00)
		before := c.Snapshot()

		op, err := c.Step()

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOpcode))

		var unsupported *UnsupportedOpcodeError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, opcode, unsupported.Opcode)
		assert.False(t, unsupported.Extended)
		assert.Equal(t, uint16(0x0100), unsupported.PC)
		assert.Equal(t, Opcode{Code: opcode}, op)

		// nothing but PC has moved
		after := c.Snapshot()
		assert.Equal(t, before.PC+1, after.PC)
		after.PC = before.PC
		assert.Equal(t, before, after)
		assert.Equal(t, before.MemoryHash, bus.Checksum())

		// the embedder can resume past the bad opcode
		step(t, c)
		assert.Equal(t, uint16(0x0102), c.PC)
	}
}

func TestUnsupportedOpcodeError(t *testing.T) {
	err := &UnsupportedOpcodeError{Opcode: 0xD3, PC: 0x1234}
	assert.Equal(t, "unsupported opcode 0xD3 at 0x1234", err.Error())

	err = &UnsupportedOpcodeError{Opcode: 0x30, Extended: true, PC: 0x0150}
	assert.Equal(t, "unsupported opcode 0xCB 0x30 at 0x0150", err.Error())
}

func TestCPU_Reset(t *testing.T) {
	c, _ := newTestCPU(t, 0x06, 0x05, 0x3E, 0x99)
	step(t, c)
	step(t, c)
	require.Equal(t, Register(0x99), c.A)

	c.Reset()

	assert.Equal(t, NewCPU(mmu.NewMMU()).Registers, c.Registers)
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestCPU_SnapshotRestore(t *testing.T) {
	c, bus := newTestCPU(t, 0x3E, 0x42)
	s := c.Snapshot()
	assert.Equal(t, bus.Checksum(), s.MemoryHash)

	step(t, c)
	assert.NotEqual(t, s.Registers, c.Registers)

	c.Restore(s)
	assert.Equal(t, s.Registers, c.Registers)
	assert.Equal(t, s.PC, c.PC)
	assert.Equal(t, "A: 01 F: B0 B: 00 C: 13 D: 00 E: D8 H: 01 L: 4D SP: FFFE PC: 0100", s.String())
}

func TestCPU_Debug(t *testing.T) {
	var out bytes.Buffer
	l := logrus.New()
	l.SetOutput(&out)
	l.SetLevel(logrus.DebugLevel)

	bus := mmu.NewMMU()
	require.NoError(t, bus.LoadImage(0x0100, []byte{0x00, 0xD3}))
	c := NewCPU(bus, Debug(), WithLogger(l))

	step(t, c)
	assert.Contains(t, out.String(), "NOP")

	_, err := c.Step()
	require.Error(t, err)
	assert.Contains(t, out.String(), "unsupported opcode 0xD3 at 0x0101")
}

func TestCPU_Independent(t *testing.T) {
	a, _ := newTestCPU(t, 0x3E, 0x01)
	b, _ := newTestCPU(t, 0x3E, 0x02)

	step(t, a)
	step(t, b)

	assert.Equal(t, Register(0x01), a.A)
	assert.Equal(t, Register(0x02), b.A)
}

func TestCPU_SaveLoad(t *testing.T) {
	c, _ := newTestCPU(t)
	c.SetAF(0x12A0)
	c.SetBC(0x3456)
	c.SP, c.PC = 0xD000, 0x0150

	s := types.NewState()
	c.Save(s)
	assert.Len(t, s.Bytes(), 12)

	restored, _ := newTestCPU(t)
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}
