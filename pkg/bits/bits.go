// Package bits holds single-bit helpers for 8-bit values.
package bits

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Reset clears bit i of b.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets bit i of b.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether bit i of b is set.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}
