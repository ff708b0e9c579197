package cpu

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOpcode matches every *UnsupportedOpcodeError via errors.Is.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// UnsupportedOpcodeError is returned by Step when the fetched opcode has
// no handler in the instruction set.
type UnsupportedOpcodeError struct {
	// Opcode is the byte that failed to decode. For extended opcodes this
	// is the byte following the 0xCB prefix.
	Opcode uint8
	// Extended is set if the opcode was read from the 0xCB space.
	Extended bool
	// PC is the address of the first byte of the instruction.
	PC uint16
}

func (e *UnsupportedOpcodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("unsupported opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unsupported opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnsupportedOpcodeError) Is(target error) bool {
	return target == ErrUnsupportedOpcode
}
