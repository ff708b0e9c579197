package cpu

import "fmt"

// pushStack pushes a 16 bit value onto the stack. The high byte is
// written to SP-1 and the low byte to SP-2, leaving SP pointing at the
// low byte.
func (c *CPU) pushStack(value uint16) {
	c.writeByte(c.SP-1, uint8(value>>8))
	c.writeByte(c.SP-2, uint8(value))
	c.SP -= 2
}

// popStack pops a 16 bit value off the stack, reading the low byte at SP
// and the high byte at SP+1.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.readByte(c.SP))
	upper := uint16(c.readByte(c.SP+1)) << 8
	c.SP += 2
	return lower | upper
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// jumpAbsoluteConditional jumps to the given address if the given condition is
// true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.jumpAbsolute(address)
	}
}

// jumpRelative jumps to the address relative to the current PC. The
// offset is signed.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.jumpAbsolute(c.PC + uint16(int8(offset)))
}

// jumpRelativeConditional jumps to the address relative to the current PC if
// the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.jumpRelative(offset)
	}
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address. The operand must already have been consumed, so that
// PC holds the return address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional calls the given address if the given condition is true.
// Otherwise neither the stack nor PC are touched.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.call(address)
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional pops the top two bytes off the stack and jumps to that
// address if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.ret()
	}
}

// reset pushes the current PC onto the stack and jumps to address. On
// hardware the address is one of the eight restart vectors 0x00, 0x08,
// ..., 0x38.
//
//	RST n
func (c *CPU) reset(address uint16) {
	c.call(address)
}

func init() {
	defineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(c.readOperand()) })
	defineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(c.readOperand16()) })
	defineInstruction(0xE9, "JP HL", func(c *CPU) { c.jumpAbsolute(c.HL()) })
	defineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(c.readOperand16()) })
	defineInstruction(0xC9, "RET", func(c *CPU) { c.ret() })

	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		defineInstruction(0x20+cc<<3, fmt.Sprintf("JR %s, r8", name), func(c *CPU) {
			c.jumpRelativeConditional(c.condition(cc), c.readOperand())
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		defineInstruction(0xC2+cc<<3, fmt.Sprintf("JP %s, a16", name), func(c *CPU) {
			c.jumpAbsoluteConditional(c.condition(cc), c.readOperand16())
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		defineInstruction(0xC4+cc<<3, fmt.Sprintf("CALL %s, a16", name), func(c *CPU) {
			c.callConditional(c.condition(cc), c.readOperand16())
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		defineInstruction(0xC0+cc<<3, "RET "+name, func(c *CPU) {
			c.retConditional(c.condition(cc))
		})
	}

	// 0xC7, 0xCF, ..., 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) * 8
		defineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02Xh", address), func(c *CPU) {
			c.reset(address)
		})
	}
}
