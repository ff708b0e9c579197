package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type aluTest struct {
	name    string
	a, n    uint8
	carryIn bool
	want    uint8
	flags   Flags
}

func runALUTests(t *testing.T, tests []aluTest, fn func(c *CPU, n uint8)) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(t)
			c.A = tt.a
			c.F = Flags{Carry: tt.carryIn}

			fn(c, tt.n)

			assert.Equal(t, tt.want, c.A, "A")
			assert.Equal(t, tt.flags, c.F, "flags")
		})
	}
}

func TestALU_Add(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "no flags", a: 0x12, n: 0x34, want: 0x46},
		{name: "half carry", a: 0x0F, n: 0x01, want: 0x10, flags: Flags{HalfCarry: true}},
		{name: "carry", a: 0xF0, n: 0x20, want: 0x10, flags: Flags{Carry: true}},
		{name: "zero", a: 0x80, n: 0x80, want: 0x00, flags: Flags{Zero: true, Carry: true}},
		{name: "all", a: 0x3A, n: 0xC6, want: 0x00, flags: Flags{Zero: true, HalfCarry: true, Carry: true}},
		{name: "ignores carry in", a: 0x01, n: 0x01, carryIn: true, want: 0x02},
	}, func(c *CPU, n uint8) { c.add(n, false) })
}

func TestALU_AddCarry(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "carry in", a: 0x01, n: 0x01, carryIn: true, want: 0x03},
		{name: "chained overflow", a: 0xFF, n: 0x01, carryIn: true, want: 0x01, flags: Flags{HalfCarry: true, Carry: true}},
		{name: "half carry from carry in", a: 0x0E, n: 0x01, carryIn: true, want: 0x10, flags: Flags{HalfCarry: true}},
		{name: "carry from carry in", a: 0xFF, n: 0x00, carryIn: true, want: 0x00, flags: Flags{Zero: true, HalfCarry: true, Carry: true}},
		{name: "no carry in", a: 0xE1, n: 0x0F, want: 0xF0, flags: Flags{HalfCarry: true}},
	}, func(c *CPU, n uint8) { c.add(n, true) })
}

func TestALU_Sub(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "no borrow", a: 0x3E, n: 0x0E, want: 0x30, flags: Flags{Subtract: true}},
		{name: "zero", a: 0x3E, n: 0x3E, want: 0x00, flags: Flags{Zero: true, Subtract: true}},
		{name: "half borrow", a: 0x10, n: 0x01, want: 0x0F, flags: Flags{Subtract: true, HalfCarry: true}},
		{name: "borrow", a: 0x3E, n: 0x40, want: 0xFE, flags: Flags{Subtract: true, Carry: true}},
		{name: "ignores carry in", a: 0x05, n: 0x01, carryIn: true, want: 0x04, flags: Flags{Subtract: true}},
	}, func(c *CPU, n uint8) { c.sub(n, false) })
}

func TestALU_SubCarry(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "carry in", a: 0x3B, n: 0x2A, carryIn: true, want: 0x10, flags: Flags{Subtract: true}},
		{name: "half borrow from carry in", a: 0x10, n: 0x00, carryIn: true, want: 0x0F, flags: Flags{Subtract: true, HalfCarry: true}},
		{name: "borrow from carry in", a: 0x00, n: 0xFF, carryIn: true, want: 0x00, flags: Flags{Zero: true, Subtract: true, HalfCarry: true, Carry: true}},
		{name: "operand and carry equal A", a: 0x3B, n: 0x3A, carryIn: true, want: 0x00, flags: Flags{Zero: true, Subtract: true}},
	}, func(c *CPU, n uint8) { c.sub(n, true) })
}

func TestALU_Logic(t *testing.T) {
	t.Run("AND", func(t *testing.T) {
		runALUTests(t, []aluTest{
			{name: "result", a: 0x5A, n: 0x3F, carryIn: true, want: 0x1A, flags: Flags{HalfCarry: true}},
			{name: "zero", a: 0x5A, n: 0xA5, want: 0x00, flags: Flags{Zero: true, HalfCarry: true}},
		}, (*CPU).and)
	})
	t.Run("OR", func(t *testing.T) {
		runALUTests(t, []aluTest{
			{name: "result", a: 0x5A, n: 0x0F, carryIn: true, want: 0x5F},
			{name: "zero", a: 0x00, n: 0x00, want: 0x00, flags: Flags{Zero: true}},
		}, (*CPU).or)
	})
	t.Run("XOR", func(t *testing.T) {
		runALUTests(t, []aluTest{
			{name: "result", a: 0x5A, n: 0xFF, carryIn: true, want: 0xA5},
			{name: "zero", a: 0x5A, n: 0x5A, want: 0x00, flags: Flags{Zero: true}},
		}, (*CPU).xor)
	})
}

func TestALU_Compare(t *testing.T) {
	runALUTests(t, []aluTest{
		{name: "equal", a: 0x05, n: 0x05, want: 0x05, flags: Flags{Zero: true, Subtract: true}},
		{name: "less", a: 0x3C, n: 0x40, want: 0x3C, flags: Flags{Subtract: true, Carry: true}},
		{name: "half borrow", a: 0x3C, n: 0x2F, want: 0x3C, flags: Flags{Subtract: true, HalfCarry: true}},
	}, (*CPU).compare)
}

func TestALU_AddSubRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c.A = uint8(a)
			c.add(uint8(b), false)
			c.sub(uint8(b), false)
			if c.A != uint8(a) {
				t.Fatalf("ADD then SUB of 0x%02X gave 0x%02X, expected 0x%02X", b, c.A, a)
			}
		}
	}
}

func TestALU_Instructions(t *testing.T) {
	// ADD A, (HL)
	c, bus := newTestCPU(t, 0x86)
	c.A = 0x42
	c.SetHL(0xC000)
	bus.Write(0xC000, 0x42)
	step(t, c)
	assert.Equal(t, Register(0x84), c.A)
	assert.Equal(t, Flags{}, c.F)

	// CP d8 leaves A alone and consumes its operand
	c, _ = newTestCPU(t, 0xFE, 0x05)
	c.A = 0x05
	step(t, c)
	assert.Equal(t, Register(0x05), c.A)
	assert.Equal(t, Flags{Zero: true, Subtract: true}, c.F)
	assert.Equal(t, uint16(0x0102), c.PC)

	// every register operand of ADC A, r
	for r := uint8(0); r < 8; r++ {
		c, bus = newTestCPU(t, 0x88+r)
		c.SetHL(0xC0C0)
		c.writeRegister(r, 0x0F)
		bus.Write(0xC0C0, 0x0F)
		c.A = 0x0F
		c.F = Flags{Carry: true}
		step(t, c)
		assert.Equal(t, Register(0x1F), c.A, registerNames[r])
		assert.Equal(t, Flags{HalfCarry: true}, c.F, registerNames[r])
	}
}
