package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the logical state of the F register. Only the upper nibble of
// F is significant; the lower nibble always reads as 0 and cannot be set,
// so the four flags are kept as booleans and packed only at the AF
// boundary.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into their F register layout.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b = bits.Set(b, FlagZero)
	}
	if f.Subtract {
		b = bits.Set(b, FlagSubtract)
	}
	if f.HalfCarry {
		b = bits.Set(b, FlagHalfCarry)
	}
	if f.Carry {
		b = bits.Set(b, FlagCarry)
	}
	return b
}

// FlagsFromByte unpacks an F register value. Bits 0-3 are ignored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// Get returns the value of a single flag.
func (f Flags) Get(flag Flag) bool {
	return bits.Test(f.Byte(), flag)
}

// Set sets a single flag to the given value.
func (f *Flags) Set(flag Flag, value bool) {
	b := f.Byte()
	if value {
		b = bits.Set(b, flag)
	} else {
		b = bits.Reset(b, flag)
	}
	*f = FlagsFromByte(b)
}

// setFlags sets all four flags at once, in Z N H C order.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.F.Carry {
		return 1
	}
	return 0
}

// conditionNames holds the mnemonics of the branch conditions, indexed
// by bits 3-4 of the opcode.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates branch condition cc (NZ, Z, NC, C).
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !c.F.Zero
	case 1:
		return c.F.Zero
	case 2:
		return !c.F.Carry
	default:
		return c.F.Carry
	}
}
