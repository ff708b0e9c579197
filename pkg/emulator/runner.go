package emulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thelolagemann/sm83/internal/mmu"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by the Controller methods of a Runner that
// is no longer running.
var ErrClosed = errors.New("emulator: runner closed")

// Runner owns an Emulator on a single goroutine. Other goroutines
// drive it by sending CommandPackets, and every packet is answered
// with exactly one ResponsePacket. Commands are only handled between
// instructions.
type Runner struct {
	emu *Emulator

	commands chan CommandPacket
	ticks    chan struct{}
	speed    chan time.Duration
	done     chan struct{}

	interval time.Duration
}

// RunnerOpt is a function that modifies a Runner instance.
type RunnerOpt func(r *Runner)

// WithInterval paces free-running steps, executing one instruction
// per interval. The default of zero runs as fast as possible.
func WithInterval(interval time.Duration) RunnerOpt {
	return func(r *Runner) {
		r.interval = interval
	}
}

// NewRunner returns a Runner for e. The Runner takes ownership of e,
// which must not be used directly until Run has returned.
func NewRunner(e *Emulator, opts ...RunnerOpt) *Runner {
	r := &Runner{
		emu:      e,
		commands: make(chan CommandPacket),
		ticks:    make(chan struct{}, 1),
		speed:    make(chan time.Duration),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run handles commands until the Runner is closed or ctx is
// cancelled. It returns nil after a Close, and the context error
// otherwise. Run must only be called once.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	interval := r.interval
	g.Go(func() error {
		defer cancel()
		defer close(r.done)
		return r.loop(ctx)
	})
	g.Go(func() error {
		r.clock(ctx, interval)
		return nil
	})
	return g.Wait()
}

// clock delivers a tick every interval while the interval is
// non-zero. Ticks that the loop has not consumed yet are dropped.
func (r *Runner) clock(ctx context.Context, interval time.Duration) {
	var ticker *time.Ticker
	var tick <-chan time.Time
	reset := func(d time.Duration) {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
		if d > 0 {
			ticker = time.NewTicker(d)
			tick = ticker.C
		}
	}
	reset(interval)
	defer reset(0)

	for {
		select {
		case <-ctx.Done():
			return
		case d := <-r.speed:
			reset(d)
		case <-tick:
			select {
			case r.ticks <- struct{}{}:
			default:
			}
		}
	}
}

func (r *Runner) loop(ctx context.Context) error {
	for {
		// unpaced free-running steps whenever no command is waiting
		if r.emu.status.IsRunning() && r.interval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case p := <-r.commands:
				if r.handle(ctx, p) {
					return nil
				}
			default:
				r.run()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-r.commands:
			if r.handle(ctx, p) {
				return nil
			}
		case <-r.ticks:
			if r.emu.status.IsRunning() {
				r.run()
			}
		}
	}
}

// run executes one free-running step.
func (r *Runner) run() {
	if _, err := r.emu.Step(); err != nil {
		r.emu.log.Errorf("stopped free-running: %s", err)
	}
}

// handle executes a single command and responds to it. It reports
// whether the Runner should stop.
func (r *Runner) handle(ctx context.Context, p CommandPacket) bool {
	resp := ResponsePacket{Command: p.Command}
	e := r.emu

	switch p.Command {
	case CommandPause:
		if !e.status.IsErrored() {
			e.status = Paused
		}
	case CommandResume:
		e.status = Running
	case CommandReset:
		resp.Error = e.Reset()
	case CommandStep:
		resp.Error = r.step(ctx, p.ctx, p.Count)
	case CommandSnapshot:
	case CommandStatus:
	case CommandPeek:
		if p.Count < 0 {
			resp.Error = fmt.Errorf("emulator: negative peek length %d", p.Count)
			break
		}
		if p.Count > mmu.Size {
			resp.Error = fmt.Errorf("emulator: peek length %d exceeds the %d byte address space", p.Count, mmu.Size)
			break
		}
		resp.Data = e.MMU.Dump(p.Address, p.Count)
	case CommandPoke:
		for i, b := range p.Data {
			e.Write(p.Address+uint16(i), b)
		}
	case CommandSetSpeed:
		select {
		case r.speed <- p.Interval:
			r.interval = p.Interval
		case <-ctx.Done():
			resp.Error = ctx.Err()
		}
	case CommandSaveState:
		resp.Data = e.SaveState()
	case CommandLoadState:
		resp.Error = e.LoadState(p.Data)
	case CommandClose:
	default:
		resp.Error = fmt.Errorf("emulator: unknown command %d", p.Command)
	}

	resp.Snapshot = e.Snapshot()
	resp.Status = e.status
	p.response <- resp

	return p.Command == CommandClose
}

// step executes n instructions, stopping early on a decode error or
// when either the Runner's ctx or the requesting client's reqCtx is
// cancelled.
func (r *Runner) step(ctx, reqCtx context.Context, n int) error {
	if reqCtx == nil {
		reqCtx = context.Background()
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := reqCtx.Err(); err != nil {
			return err
		}
		if _, err := r.emu.Step(); err != nil {
			return fmt.Errorf("step %d of %d: %w", i+1, n, err)
		}
	}
	return nil
}

// send delivers p to the loop and waits for its response.
func (r *Runner) send(ctx context.Context, p CommandPacket) (ResponsePacket, error) {
	// buffered so the loop never blocks on a client that gave up
	p.response = make(chan ResponsePacket, 1)
	p.ctx = ctx

	select {
	case r.commands <- p:
	case <-r.done:
		return ResponsePacket{}, ErrClosed
	case <-ctx.Done():
		return ResponsePacket{}, ctx.Err()
	}

	select {
	case resp := <-p.response:
		return resp, resp.Error
	case <-ctx.Done():
		return ResponsePacket{}, ctx.Err()
	}
}

// Step executes n instructions and returns the state after the last
// one. A decode error stops the batch at the faulting instruction.
func (r *Runner) Step(ctx context.Context, n int) (Snapshot, error) {
	resp, err := r.send(ctx, CommandPacket{Command: CommandStep, Count: n})
	return resp.Snapshot, err
}

// Pause stops free-running. An errored emulator stays errored.
func (r *Runner) Pause(ctx context.Context) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandPause})
	return err
}

// Resume starts free-running, clearing an Errored status.
func (r *Runner) Resume(ctx context.Context) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandResume})
	return err
}

// Reset restores the emulator to the state it was created with and
// pauses it.
func (r *Runner) Reset(ctx context.Context) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandReset})
	return err
}

func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	resp, err := r.send(ctx, CommandPacket{Command: CommandSnapshot})
	return resp.Snapshot, err
}

func (r *Runner) Status(ctx context.Context) (Status, error) {
	resp, err := r.send(ctx, CommandPacket{Command: CommandStatus})
	return resp.Status, err
}

// Peek reads length bytes starting at address. Reads wrap around the
// end of the address space.
func (r *Runner) Peek(ctx context.Context, address uint16, length int) ([]byte, error) {
	resp, err := r.send(ctx, CommandPacket{Command: CommandPeek, Address: address, Count: length})
	return resp.Data, err
}

// Poke writes data starting at address.
func (r *Runner) Poke(ctx context.Context, address uint16, data []byte) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandPoke, Address: address, Data: data})
	return err
}

// SetSpeed changes the interval between free-running steps.
func (r *Runner) SetSpeed(ctx context.Context, interval time.Duration) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandSetSpeed, Interval: interval})
	return err
}

// SaveState serialises the emulator, see Emulator.SaveState.
func (r *Runner) SaveState(ctx context.Context) ([]byte, error) {
	resp, err := r.send(ctx, CommandPacket{Command: CommandSaveState})
	return resp.Data, err
}

// LoadState restores a serialised state and pauses the emulator.
func (r *Runner) LoadState(ctx context.Context, state []byte) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandLoadState, Data: state})
	return err
}

// Close stops the Runner. Run returns nil once the loop has exited.
func (r *Runner) Close(ctx context.Context) error {
	_, err := r.send(ctx, CommandPacket{Command: CommandClose})
	return err
}
