package cpu

import "github.com/thelolagemann/sm83/pkg/log"

// Opt is a function that modifies a CPU during construction.
type Opt func(c *CPU)

// Debug enables logging of every executed instruction at debug level.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used for tracing and decode errors.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// NoBoot sets the registers to the values left behind by the DMG boot
// ROM, and starts execution at the cartridge entry point. This is the
// default state of a new CPU.
func NoBoot() Opt {
	return func(c *CPU) {
		c.Registers = Registers{
			A: 0x01,
			F: Flags{Zero: true, HalfCarry: true, Carry: true},
			B: 0x00, C: 0x13,
			D: 0x00, E: 0xD8,
			H: 0x01, L: 0x4D,
		}
		c.SP = 0xFFFE
		c.PC = 0x0100
	}
}

// WithBootROM clears every register and starts execution at 0x0000, for
// running a boot image that performs the initialisation itself.
func WithBootROM() Opt {
	return func(c *CPU) {
		c.Registers = Registers{}
		c.SP = 0x0000
		c.PC = 0x0000
	}
}

// WithRegisters overrides the initial register file.
func WithRegisters(r Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
	}
}

// WithPC overrides the initial program counter.
func WithPC(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// WithSP overrides the initial stack pointer.
func WithSP(sp uint16) Opt {
	return func(c *CPU) {
		c.SP = sp
	}
}
