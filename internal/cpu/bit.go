package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// testBit tests bit b of value. value is not modified.
//
//	BIT b, r
//	b = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b uint8, value uint8) {
	c.setFlags(!bits.Test(value, b), false, true, c.F.Carry)
}

// resetBit returns value with bit b cleared. No flags are affected.
//
//	RES b, r
func resetBit(b uint8, value uint8) uint8 {
	return bits.Reset(value, b)
}

// setBit returns value with bit b set. No flags are affected.
//
//	SET b, r
func setBit(b uint8, value uint8) uint8 {
	return bits.Set(value, b)
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	computed := value<<4 | value>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

func init() {
	for b := uint8(0); b < 8; b++ {
		for r := uint8(0); r < 8; r++ {
			b, r := b, r
			// 0x40 - 0x7F - BIT b, r
			defineInstructionCB(0x40+b<<3+r, fmt.Sprintf("BIT %d, %s", b, registerNames[r]), func(c *CPU) {
				c.testBit(b, c.readRegister(r))
			})
			// 0x80 - 0xBF - RES b, r
			defineInstructionCB(0x80+b<<3+r, fmt.Sprintf("RES %d, %s", b, registerNames[r]), func(c *CPU) {
				c.writeRegister(r, resetBit(b, c.readRegister(r)))
			})
			// 0xC0 - 0xFF - SET b, r
			defineInstructionCB(0xC0+b<<3+r, fmt.Sprintf("SET %d, %s", b, registerNames[r]), func(c *CPU) {
				c.writeRegister(r, setBit(b, c.readRegister(r)))
			})
		}
	}
}
