// Package cpu implements the SM83 instruction set: the register file,
// the ALU and its flag rules, the stack and control flow, and the
// fetch-decode-execute cycle that drives them.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// CPU represents the SM83 CPU. It is responsible for executing instructions.
// A CPU and its bus are owned by a single goroutine; nothing in this package
// is safe for concurrent use.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the flags.
	Registers

	// Debug enables logging of every executed instruction.
	Debug bool

	bus mmu.IOBus
	log log.Logger

	// initial is the state restored by Reset.
	initial Snapshot
}

// NewCPU creates a new CPU attached to the given bus. Unless overridden
// by opts, the registers hold the values left behind by the DMG boot ROM
// and execution begins at 0x0100.
func NewCPU(bus mmu.IOBus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	NoBoot()(c)

	for _, opt := range opts {
		opt(c)
	}
	c.initial = c.state()

	return c
}

// Bus returns the bus the CPU is attached to.
func (c *CPU) Bus() mmu.IOBus {
	return c.bus
}

// Reset restores the registers, PC and SP to the state the CPU was
// created with. The bus is left untouched.
func (c *CPU) Reset() {
	c.Registers = c.initial.Registers
	c.PC = c.initial.PC
	c.SP = c.initial.SP
}

// Step performs exactly one fetch-decode-execute cycle and returns the
// opcode that was executed. If the opcode has no handler an
// *UnsupportedOpcodeError is returned, and the only side effect of the
// call is PC having moved past the opcode bytes.
func (c *CPU) Step() (Opcode, error) {
	pc := c.PC

	op := Opcode{Code: c.readInstruction()}
	instruction := instructionSet[op.Code]
	if op.Code == 0xCB {
		op = Opcode{Code: c.readOperand(), Extended: true}
		instruction = instructionSetCB[op.Code]
	}

	if instruction.fn == nil {
		err := &UnsupportedOpcodeError{Opcode: op.Code, Extended: op.Extended, PC: pc}
		c.log.Errorf("%s", err)
		return op, err
	}

	instruction.fn(c)

	if c.Debug {
		c.log.Debugf("%04X: %-14s A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
			pc, instruction.name, c.A, c.F.Byte(), c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
	}

	return op, nil
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but kept separate so that operand fetches can be
// told apart from opcode fetches.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}
