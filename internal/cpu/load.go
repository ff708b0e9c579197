package cpu

import "fmt"

// loadRegister16 loads a 16-bit immediate value into the pair selected by
// index.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(index uint8) {
	c.writeRegisterPair(index, c.readOperand16())
}

// loadAccumulatorIndirect stores A at the address held by a pair, then
// adds step to HL for the post-increment and post-decrement forms.
//
//	LD (BC), A
//	LD (DE), A
//	LD (HL+), A
//	LD (HL-), A
func (c *CPU) loadAccumulatorIndirect(address uint16, step uint16) {
	c.writeByte(address, c.A)
	if step != 0 {
		c.SetHL(c.HL() + step)
	}
}

// loadIndirectAccumulator loads A from the address held by a pair, then
// adds step to HL for the post-increment and post-decrement forms.
//
//	LD A, (BC)
//	LD A, (DE)
//	LD A, (HL+)
//	LD A, (HL-)
func (c *CPU) loadIndirectAccumulator(address uint16, step uint16) {
	c.A = c.readByte(address)
	if step != 0 {
		c.SetHL(c.HL() + step)
	}
}

// pushRegisterPair and popRegisterPair move BC, DE, HL or AF to and from
// the stack. POP AF discards the low nibble of F.
//
//	PUSH nn
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushRegisterPair(index uint8) {
	if index == 3 {
		c.pushStack(c.AF())
		return
	}
	c.pushStack(c.readRegisterPair(index))
}

func (c *CPU) popRegisterPair(index uint8) {
	value := c.popStack()
	if index == 3 {
		c.SetAF(value)
		return
	}
	c.writeRegisterPair(index, value)
}

// indirectPairs holds, for the 0x02/0x0A column, the address source and
// the HL adjustment of each row.
var indirectPairs = [4]struct {
	name    string
	address func(c *CPU) uint16
	step    uint16
}{
	{"(BC)", func(c *CPU) uint16 { return c.BC() }, 0},
	{"(DE)", func(c *CPU) uint16 { return c.DE() }, 0},
	{"(HL+)", func(c *CPU) uint16 { return c.HL() }, 1},
	{"(HL-)", func(c *CPU) uint16 { return c.HL() }, 0xFFFF},
}

func init() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			dst, src := dst, src
			defineInstruction(0x40+dst<<3+src, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(c *CPU) {
				c.writeRegister(dst, c.readRegister(src))
			})
		}

		// 0x06, 0x0E, ..., 0x3E - LD r, d8
		dst := dst
		defineInstruction(0x06+dst<<3, fmt.Sprintf("LD %s, d8", registerNames[dst]), func(c *CPU) {
			c.writeRegister(dst, c.readOperand())
		})
	}

	for p := uint8(0); p < 4; p++ {
		p := p
		// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
		defineInstruction(0x01+p<<4, fmt.Sprintf("LD %s, d16", registerPairNames[p]), func(c *CPU) {
			c.loadRegister16(p)
		})

		ind := indirectPairs[p]
		// 0x02, 0x12, 0x22, 0x32 - LD (rr), A
		defineInstruction(0x02+p<<4, fmt.Sprintf("LD %s, A", ind.name), func(c *CPU) {
			c.loadAccumulatorIndirect(ind.address(c), ind.step)
		})
		// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (rr)
		defineInstruction(0x0A+p<<4, fmt.Sprintf("LD A, %s", ind.name), func(c *CPU) {
			c.loadIndirectAccumulator(ind.address(c), ind.step)
		})

		// 0xC1, 0xD1, 0xE1, 0xF1 - POP nn
		defineInstruction(0xC1+p<<4, "POP "+stackPairNames[p], func(c *CPU) {
			c.popRegisterPair(p)
		})
		// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH nn
		defineInstruction(0xC5+p<<4, "PUSH "+stackPairNames[p], func(c *CPU) {
			c.pushRegisterPair(p)
		})
	}

	defineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	})
	defineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	defineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	defineInstruction(0xE2, "LD (C), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	})
	defineInstruction(0xF2, "LD A, (C)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	})
	defineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		c.writeByte(c.readOperand16(), c.A)
	})
	defineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		c.A = c.readByte(c.readOperand16())
	})
	defineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.SetHL(c.addSPSigned(c.readOperand()))
	})
	defineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.HL()
	})
}
