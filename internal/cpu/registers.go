package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Register is an 8-bit CPU register.
type Register = types.Register

// Registers represents the SM83 register file. The 16-bit pairs BC, DE,
// HL and AF are views over the 8-bit registers and hold no state of
// their own.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	F Flags
}

func (r *Registers) bc() types.RegisterPair { return types.RegisterPair{High: &r.B, Low: &r.C} }
func (r *Registers) de() types.RegisterPair { return types.RegisterPair{High: &r.D, Low: &r.E} }
func (r *Registers) hl() types.RegisterPair { return types.RegisterPair{High: &r.H, Low: &r.L} }

// BC returns B as the high byte and C as the low byte.
func (r *Registers) BC() uint16 { return r.bc().Uint16() }

// SetBC splits value into B (high) and C (low).
func (r *Registers) SetBC(value uint16) { r.bc().SetUint16(value) }

// DE returns D as the high byte and E as the low byte.
func (r *Registers) DE() uint16 { return r.de().Uint16() }

// SetDE splits value into D (high) and E (low).
func (r *Registers) SetDE(value uint16) { r.de().SetUint16(value) }

// HL returns H as the high byte and L as the low byte.
func (r *Registers) HL() uint16 { return r.hl().Uint16() }

// SetHL splits value into H (high) and L (low).
func (r *Registers) SetHL(value uint16) { r.hl().SetUint16(value) }

// AF returns A as the high byte and the packed flags as the low byte.
func (r *Registers) AF() uint16 { return types.Uint16(r.A, r.F.Byte()) }

// SetAF splits value into A and the flags. The lower nibble of the low
// byte is discarded.
func (r *Registers) SetAF(value uint16) {
	var f uint8
	r.A, f = types.Split(value)
	r.F = FlagsFromByte(f)
}

// registerNames holds the operand names for the 3-bit register index used
// by the decoder. Index 6 addresses memory at HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPairNames holds the operand names for the 2-bit pair index of
// the 16-bit load and arithmetic instructions.
var registerPairNames = [4]string{"BC", "DE", "HL", "SP"}

// stackPairNames holds the operand names for the 2-bit pair index of
// PUSH and POP, which use AF in place of SP.
var stackPairNames = [4]string{"BC", "DE", "HL", "AF"}

// readRegister returns the value selected by a 3-bit register index.
func (c *CPU) readRegister(index uint8) uint8 {
	switch index & 0x7 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL())
	default:
		return c.A
	}
}

// writeRegister stores value into the target selected by a 3-bit
// register index.
func (c *CPU) writeRegister(index uint8, value uint8) {
	switch index & 0x7 {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.writeByte(c.HL(), value)
	default:
		c.A = value
	}
}

// readRegisterPair returns BC, DE, HL or SP for a 2-bit pair index.
func (c *CPU) readRegisterPair(index uint8) uint16 {
	switch index & 0x3 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

// writeRegisterPair sets BC, DE, HL or SP for a 2-bit pair index.
func (c *CPU) writeRegisterPair(index uint8, value uint16) {
	switch index & 0x3 {
	case 0:
		c.SetBC(value)
	case 1:
		c.SetDE(value)
	case 2:
		c.SetHL(value)
	default:
		c.SP = value
	}
}
