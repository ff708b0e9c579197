package cpu

import "fmt"

// add adds n, and the carry flag if withCarry is set, to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	halfSum := c.A&0xF + n&0xF + carry

	c.setFlags(uint8(sum) == 0, false, halfSum > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// subtract subtracts n, and the carry flag if withCarry is set, from the
// A Register and returns the result without storing it. The flags are
// set as for SUB.
func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	result := c.A - n - carry

	c.setFlags(result == 0, true, c.A&0xF < n&0xF+carry, uint16(c.A) < uint16(n)+uint16(carry))
	return result
}

// sub subtracts n, and the carry flag if withCarry is set, from the A
// Register.
//
//	SUB A, n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.A = c.subtract(n, withCarry)
}

// compare compares n to the A Register. The A Register is not modified.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// aluOperation is one of the eight accumulator operations, in the order
// they are encoded by bits 3-5 of the opcode.
type aluOperation struct {
	name string
	fn   func(c *CPU, n uint8)
}

var aluOperations = [8]aluOperation{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB A,", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	for i, op := range aluOperations {
		op := op
		// 0x80 - 0xBF - ALU A, r
		for r := uint8(0); r < 8; r++ {
			r := r
			defineInstruction(0x80+uint8(i)<<3+r, fmt.Sprintf("%s %s", op.name, registerNames[r]), func(c *CPU) {
				op.fn(c, c.readRegister(r))
			})
		}
		// 0xC6, 0xCE, ..., 0xFE - ALU A, d8
		defineInstruction(0xC6+uint8(i)<<3, op.name+" d8", func(c *CPU) {
			op.fn(c, c.readOperand())
		})
	}
}
