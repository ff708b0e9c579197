package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// shiftLeftArithmetic shifts n left by one bit, and sets the carry flag to the
// most significant bit of n. Bit 0 is filled with 0.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right by one bit and sets the carry flag to the
// least significant bit of n. The most significant bit does not change.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&bits.Bit7
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// shiftRightLogical shifts n right one bit and sets the carry flag to the
// least significant bit of n. Bit 7 is filled with 0.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// shiftOperations are the rotates and shifts of the first quarter of the
// 0xCB table, in the order they are encoded by bits 3-5 of the opcode.
var shiftOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// 0x00 - 0x3F - rotate / shift r
	for i, op := range shiftOperations {
		for r := uint8(0); r < 8; r++ {
			fn, r := op.fn, r
			defineInstructionCB(uint8(i)<<3+r, op.name+" "+registerNames[r], func(c *CPU) {
				c.writeRegister(r, fn(c, c.readRegister(r)))
			})
		}
	}
}
