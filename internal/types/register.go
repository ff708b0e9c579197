package types

// Register represents an SM83 Register which is used to hold an 8-bit value.
// The CPU has 7 general purpose registers: A, B, C, D, E, H and L. The flag
// register F is modelled separately, as it only holds 4 significant bits.
type Register = uint8

// RegisterPair is a view over two Registers that are treated as a single
// 16-bit value, with High holding the most significant byte. A RegisterPair
// holds no state of its own, reads and writes go straight through to the
// underlying Registers.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return Uint16(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = Split(value)
}

// Uint16 composes a 16-bit value from its high and low bytes.
func Uint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split returns the high and low bytes of value.
func Split(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
