package cpu

import "fmt"

// Instruction is a single entry in the dispatch table.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// Name returns the mnemonic of the instruction, e.g. "LD B, d8".
func (i Instruction) Name() string {
	return i.name
}

// Opcode identifies a decoded instruction. Extended opcodes are the ones
// reached through the 0xCB prefix.
type Opcode struct {
	Code     uint8
	Extended bool
}

func (o Opcode) String() string {
	if o.Extended {
		return fmt.Sprintf("0xCB 0x%02X", o.Code)
	}
	return fmt.Sprintf("0x%02X", o.Code)
}

// Name returns the mnemonic of the opcode, or an empty string if the
// opcode has no handler.
func (o Opcode) Name() string {
	i, _ := Lookup(o)
	return i.name
}

var (
	// instructionSet and instructionSetCB are the dispatch tables for the
	// base and 0xCB-prefixed opcode spaces. They are filled in once by the
	// init functions of this package and only read afterwards, so every
	// CPU shares them. An entry without a fn is unsupported.
	instructionSet   [256]Instruction
	instructionSetCB [256]Instruction
)

// Lookup returns the instruction for o, and whether it is supported.
func Lookup(o Opcode) (Instruction, bool) {
	var i Instruction
	if o.Extended {
		i = instructionSetCB[o.Code]
	} else {
		i = instructionSet[o.Code]
	}
	return i, i.fn != nil
}

// defineInstruction registers fn as the handler for opcode in the base
// instruction set.
func defineInstruction(opcode uint8, name string, fn func(*CPU)) {
	if instructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("opcode 0x%02X defined twice (%s, %s)", opcode, instructionSet[opcode].name, name))
	}
	instructionSet[opcode] = Instruction{name: name, fn: fn}
}

// defineInstructionCB registers fn as the handler for opcode in the 0xCB
// instruction set.
func defineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	if instructionSetCB[opcode].fn != nil {
		panic(fmt.Sprintf("opcode 0xCB 0x%02X defined twice (%s, %s)", opcode, instructionSetCB[opcode].name, name))
	}
	instructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// decimalAdjust corrects the accumulator after a BCD addition or
// subtraction, using N to tell which one it was.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if a correction of 0x60 was applied.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.F.Carry
	if c.F.HalfCarry || (!c.F.Subtract && c.A&0xF > 0x9) {
		correction |= 0x06
	}
	if c.F.Carry || (!c.F.Subtract && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if c.F.Subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, c.F.Subtract, false, carry)
}

func init() {
	defineInstruction(0x00, "NOP", func(c *CPU) {})
	defineInstruction(0x27, "DAA", func(c *CPU) { c.decimalAdjust() })
	defineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlags(c.F.Zero, true, true, c.F.Carry)
	})
	defineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlags(c.F.Zero, false, false, true)
	})
	defineInstruction(0x3F, "CCF", func(c *CPU) {
		c.setFlags(c.F.Zero, false, false, !c.F.Carry)
	})
}
