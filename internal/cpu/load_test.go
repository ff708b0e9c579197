package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RegisterToRegister(t *testing.T) {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			opcode := 0x40 + dst<<3 + src
			t.Run(fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(t *testing.T) {
				c, _ := newTestCPU(t, opcode)
				c.SetHL(0xC000)
				c.writeRegister(src, 0xC0)
				flags := c.F
				step(t, c)
				assert.Equal(t, uint8(0xC0), c.readRegister(dst))
				assert.Equal(t, flags, c.F)
			})
		}
	}
}

func TestLoad_Immediate(t *testing.T) {
	for dst := uint8(0); dst < 8; dst++ {
		t.Run(fmt.Sprintf("LD %s, d8", registerNames[dst]), func(t *testing.T) {
			c, _ := newTestCPU(t, 0x06+dst<<3, 0x42)
			c.SetHL(0xC000)
			step(t, c)
			assert.Equal(t, uint8(0x42), c.readRegister(dst))
			assert.Equal(t, uint16(0x0102), c.PC)
		})
	}
	for p := uint8(0); p < 4; p++ {
		t.Run(fmt.Sprintf("LD %s, d16", registerPairNames[p]), func(t *testing.T) {
			c, _ := newTestCPU(t, 0x01+p<<4, 0x34, 0x12)
			step(t, c)
			assert.Equal(t, uint16(0x1234), c.readRegisterPair(p))
			assert.Equal(t, uint16(0x0103), c.PC)
		})
	}
}

func TestLoad_Indirect(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		setup  func(c *CPU)
		hl     uint16
	}{
		{"LD (BC), A", 0x02, func(c *CPU) { c.SetBC(0xC000) }, 0x1234},
		{"LD (DE), A", 0x12, func(c *CPU) { c.SetDE(0xC000) }, 0x1234},
		{"LD (HL+), A", 0x22, func(c *CPU) {}, 0xC001},
		{"LD (HL-), A", 0x32, func(c *CPU) {}, 0xBFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU(t, tt.opcode)
			c.SetHL(0x1234)
			if tt.hl != 0x1234 {
				c.SetHL(0xC000)
			}
			tt.setup(c)
			c.A = 0x99
			step(t, c)
			assert.Equal(t, uint8(0x99), bus.Read(0xC000))
			assert.Equal(t, tt.hl, c.HL())
		})
		t.Run(Opcode{Code: tt.opcode + 8}.Name(), func(t *testing.T) {
			c, bus := newTestCPU(t, tt.opcode+8)
			c.SetHL(0x1234)
			if tt.hl != 0x1234 {
				c.SetHL(0xC000)
			}
			tt.setup(c)
			bus.Write(0xC000, 0x77)
			step(t, c)
			assert.Equal(t, uint8(0x77), c.A)
			assert.Equal(t, tt.hl, c.HL())
		})
	}
}

func TestLoad_HighPage(t *testing.T) {
	// LDH (a8), A
	c, bus := newTestCPU(t, 0xE0, 0x80)
	c.A = 0x5A
	step(t, c)
	assert.Equal(t, uint8(0x5A), bus.Read(0xFF80))

	// LDH A, (a8)
	c, bus = newTestCPU(t, 0xF0, 0x81)
	bus.Write(0xFF81, 0xA5)
	step(t, c)
	assert.Equal(t, uint8(0xA5), c.A)

	// LD (C), A
	c, bus = newTestCPU(t, 0xE2)
	c.C, c.A = 0x90, 0x11
	step(t, c)
	assert.Equal(t, uint8(0x11), bus.Read(0xFF90))

	// LD A, (C)
	c, bus = newTestCPU(t, 0xF2)
	c.C = 0x91
	bus.Write(0xFF91, 0x22)
	step(t, c)
	assert.Equal(t, uint8(0x22), c.A)
}

func TestLoad_Absolute(t *testing.T) {
	// LD (a16), A
	c, bus := newTestCPU(t, 0xEA, 0x10, 0xC0)
	c.A = 0x33
	step(t, c)
	assert.Equal(t, uint8(0x33), bus.Read(0xC010))
	assert.Equal(t, uint16(0x0103), c.PC)

	// LD A, (a16)
	c, bus = newTestCPU(t, 0xFA, 0x10, 0xC0)
	bus.Write(0xC010, 0x44)
	step(t, c)
	assert.Equal(t, uint8(0x44), c.A)

	// LD (a16), SP
	c, bus = newTestCPU(t, 0x08, 0x00, 0xC0)
	c.SP = 0xBEEF
	step(t, c)
	assert.Equal(t, uint8(0xEF), bus.Read(0xC000))
	assert.Equal(t, uint8(0xBE), bus.Read(0xC001))

	// LD SP, HL
	c, _ = newTestCPU(t, 0xF9)
	c.SetHL(0xD000)
	step(t, c)
	assert.Equal(t, uint16(0xD000), c.SP)
}

func TestLoad_PushPop(t *testing.T) {
	for p := uint8(0); p < 3; p++ {
		t.Run(stackPairNames[p], func(t *testing.T) {
			// PUSH rr, POP rr
			c, _ := newTestCPU(t, 0xC5+p<<4, 0xC1+p<<4)
			c.writeRegisterPair(p, 0x1234)
			step(t, c)
			assert.Equal(t, uint16(0xFFFC), c.SP)
			c.writeRegisterPair(p, 0)
			step(t, c)
			assert.Equal(t, uint16(0x1234), c.readRegisterPair(p))
			assert.Equal(t, uint16(0xFFFE), c.SP)
		})
	}

	t.Run("AF", func(t *testing.T) {
		// POP AF
		c, bus := newTestCPU(t, 0xF1)
		c.SP = 0xFFFC
		bus.Write16(0xFFFC, 0x12FF)
		step(t, c)
		assert.Equal(t, Register(0x12), c.A)
		assert.Equal(t, uint8(0xF0), c.F.Byte(), "low nibble of F is discarded")

		// PUSH AF
		c, bus = newTestCPU(t, 0xF5)
		c.A = 0x12
		c.F = Flags{Zero: true, Carry: true}
		step(t, c)
		assert.Equal(t, uint16(0x1290), bus.Read16(0xFFFC))
	})
}
