package emulator

import (
	"context"
	"time"
)

// Controller defines the interface contract for driving an
// Emulator that is owned by another goroutine. Every call is
// a request to the owner, so none of them touch the CPU or
// the bus directly.
type Controller interface {
	Step(ctx context.Context, n int) (Snapshot, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (Snapshot, error)
	Status(ctx context.Context) (Status, error)
	Peek(ctx context.Context, address uint16, length int) ([]byte, error)
	Poke(ctx context.Context, address uint16, data []byte) error
	SetSpeed(ctx context.Context, interval time.Duration) error
	SaveState(ctx context.Context) ([]byte, error)
	LoadState(ctx context.Context, state []byte) error
	Close(ctx context.Context) error
}

var _ Controller = (*Runner)(nil)
