package emulator

import (
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies an Emulator
// instance.
type Opt func(e *Emulator)

// LoadAt sets the address the image is loaded at.
func LoadAt(offset uint16) Opt {
	return func(e *Emulator) {
		e.offset = offset
	}
}

// WithCPU forwards options to the CPU.
func WithCPU(opts ...cpu.Opt) Opt {
	return func(e *Emulator) {
		e.cpuOpts = append(e.cpuOpts, opts...)
	}
}

// Debug enables instruction tracing on the CPU.
func Debug() Opt {
	return WithCPU(cpu.Debug())
}

func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.log = l
	}
}
