// Package emulator ties a CPU and its memory bus together into a single
// owned aggregate, and provides a Runner for driving that aggregate from
// other goroutines through message passing.
package emulator

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Snapshot is a copy of the CPU state, see cpu.Snapshot.
type Snapshot = cpu.Snapshot

// Emulator owns one CPU and the bus it executes from. It is not safe
// for concurrent use; hand it to a Runner to share it between
// goroutines.
type Emulator struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	image  []byte
	offset uint16
	status Status

	cpuOpts []cpu.Opt
	log     log.Logger
}

// New creates an Emulator with image loaded into the bus at the
// configured offset (0x0000 unless changed with LoadAt).
func New(image []byte, opts ...Opt) (*Emulator, error) {
	e := &Emulator{
		MMU:    mmu.NewMMU(),
		image:  image,
		status: Paused,
		log:    log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.MMU.LoadImage(e.offset, e.image); err != nil {
		return nil, fmt.Errorf("emulator: loading image: %w", err)
	}

	e.CPU = cpu.NewCPU(e.MMU, append([]cpu.Opt{cpu.WithLogger(e.log)}, e.cpuOpts...)...)
	e.log.Infof("loaded %d bytes at 0x%04X, entry point 0x%04X", len(e.image), e.offset, e.CPU.PC)

	return e, nil
}

// Step executes a single instruction. A decode error moves the
// emulator into the Errored status.
func (e *Emulator) Step() (cpu.Opcode, error) {
	op, err := e.CPU.Step()
	if err != nil {
		e.status = Errored
	}
	return op, err
}

// Snapshot returns the current CPU state along with a fingerprint
// of the bus.
func (e *Emulator) Snapshot() Snapshot {
	return e.CPU.Snapshot()
}

// Read reads the byte at address without going through the CPU.
func (e *Emulator) Read(address uint16) uint8 {
	return e.MMU.Read(address)
}

// Write writes value to address without going through the CPU.
func (e *Emulator) Write(address uint16, value uint8) {
	e.MMU.Write(address, value)
}

// Reset clears the bus, reloads the image and restores the CPU to the
// state it was created with.
func (e *Emulator) Reset() error {
	e.MMU.Reset()
	if err := e.MMU.LoadImage(e.offset, e.image); err != nil {
		return fmt.Errorf("emulator: reloading image: %w", err)
	}
	e.CPU.Reset()
	e.status = Paused
	return nil
}

// Status returns the current status of the emulator.
func (e *Emulator) Status() Status {
	return e.status
}
