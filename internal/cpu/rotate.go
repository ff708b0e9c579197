package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & bits.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == bits.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & bits.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == bits.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryBit()
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied to
// the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)
	return computed
}

// rotateAccumulator applies rotate to the A Register. Unlike the 0xCB
// forms, the accumulator rotates always reset the zero flag.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit rotated out.
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.F.Zero = false
}

func init() {
	defineInstruction(0x07, "RLCA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftCarry) })
	defineInstruction(0x0F, "RRCA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightCarry) })
	defineInstruction(0x17, "RLA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
	defineInstruction(0x1F, "RRA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })
}
