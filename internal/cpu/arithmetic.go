package cpu

import "fmt"

// increment returns n+1 and sets the flags accordingly. The half carry is
// taken from the operand, not the result: it is set when the low nibble
// of n is about to overflow.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.F.Carry)
	return incremented
}

// decrement returns n-1 and sets the flags accordingly. The half carry is
// set when the low nibble of n is about to borrow.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.F.Carry)
	return decremented
}

// addUint16 adds two uint16 values together and sets the flags
// accordingly.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.F.Zero, false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned returns SP plus the signed offset e. The flags come from
// the unsigned addition of e to the low byte of SP.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(false, false, (c.SP&0xF)+uint16(e&0xF) > 0xF, (c.SP&0xFF)+uint16(e) > 0xFF)
	return result
}

func init() {
	for r := uint8(0); r < 8; r++ {
		r := r
		// 0x04, 0x0C, ..., 0x3C - INC r
		defineInstruction(0x04+r<<3, "INC "+registerNames[r], func(c *CPU) {
			c.writeRegister(r, c.increment(c.readRegister(r)))
		})
		// 0x05, 0x0D, ..., 0x3D - DEC r
		defineInstruction(0x05+r<<3, "DEC "+registerNames[r], func(c *CPU) {
			c.writeRegister(r, c.decrement(c.readRegister(r)))
		})
	}

	// the 16-bit increments and decrements leave the flags alone
	for p := uint8(0); p < 4; p++ {
		p := p
		// 0x03, 0x13, 0x23, 0x33 - INC rr
		defineInstruction(0x03+p<<4, "INC "+registerPairNames[p], func(c *CPU) {
			c.writeRegisterPair(p, c.readRegisterPair(p)+1)
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
		defineInstruction(0x0B+p<<4, "DEC "+registerPairNames[p], func(c *CPU) {
			c.writeRegisterPair(p, c.readRegisterPair(p)-1)
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
		defineInstruction(0x09+p<<4, fmt.Sprintf("ADD HL, %s", registerPairNames[p]), func(c *CPU) {
			c.SetHL(c.addUint16(c.HL(), c.readRegisterPair(p)))
		})
	}

	defineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned(c.readOperand())
	})
}
