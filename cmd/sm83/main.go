package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/pkg/emulator"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// batch is the number of instructions requested per Step command when
// running until an error.
const batch = 4096

var errStopped = errors.New("stopped on an unsupported opcode")

func main() {
	imageFile := flag.String("image", "", "The memory image to load (raw, .gz, .zip or .7z)")
	offset := flag.Uint("offset", 0x0100, "The address to load the image at")
	boot := flag.Bool("boot", false, "Start from zeroed registers at 0x0000 instead of the post-boot state")
	steps := flag.Int("steps", 0, "The number of instructions to execute, 0 runs until an unsupported opcode (ignored with -interval)")
	interval := flag.Duration("interval", 0, "Pause between instructions, e.g. 1ms")
	debug := flag.Bool("debug", false, "Trace every executed instruction")
	level := flag.String("log-level", "info", "The log level")
	state := flag.String("state", "", "A state file to restore before running")
	save := flag.String("save", "", "Write the final state to this file")
	flag.Parse()

	logger, err := log.WithLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *imageFile == "" || *offset > 0xFFFF {
		flag.Usage()
		os.Exit(2)
	}

	image, err := utils.LoadFile(*imageFile)
	if err != nil {
		logger.Errorf("loading %s: %s", *imageFile, err)
		os.Exit(1)
	}

	opts := []emulator.Opt{emulator.LoadAt(uint16(*offset)), emulator.WithLogger(logger)}
	if *boot {
		opts = append(opts, emulator.WithCPU(cpu.WithBootROM()))
	}
	if *debug {
		opts = append(opts, emulator.Debug())
	}
	emu, err := emulator.New(image, opts...)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}

	if *state != "" {
		data, err := utils.LoadFile(*state)
		if err == nil {
			err = emu.LoadState(data)
		}
		if err != nil {
			logger.Errorf("restoring %s: %s", *state, err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := emulator.NewRunner(emu, emulator.WithInterval(*interval))
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(ctx)
	})
	g.Go(func() error {
		defer closeRunner(context.Background(), runner, logger)
		return drive(ctx, runner, *steps, *interval)
	})

	err = g.Wait()
	// the final state is only readable once the runner has stopped
	fmt.Println(emu.Snapshot())
	if *save != "" {
		if err := os.WriteFile(*save, emu.SaveState(), 0644); err != nil {
			logger.Errorf("saving %s: %s", *save, err)
		}
	}

	var unsupported *cpu.UnsupportedOpcodeError
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, errStopped):
		logger.Infof("%s", err)
	case errors.As(err, &unsupported):
		logger.Infof("stopped: %s", unsupported)
	default:
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

// closeRunner closes r, logging any failure other than r having
// already stopped.
func closeRunner(ctx context.Context, r *emulator.Runner, logger log.Logger) {
	if err := r.Close(ctx); err != nil && !errors.Is(err, emulator.ErrClosed) {
		logger.Errorf("closing runner: %s", err)
	}
}

// drive steps the runner either a fixed number of times or until the
// CPU errors. With a pacing interval the runner free-runs instead and
// drive only watches its status.
func drive(ctx context.Context, r *emulator.Runner, steps int, interval time.Duration) error {
	if interval == 0 {
		if steps > 0 {
			_, err := r.Step(ctx, steps)
			return err
		}
		for {
			if _, err := r.Step(ctx, batch); err != nil {
				return err
			}
		}
	}

	if err := r.Resume(ctx); err != nil {
		return err
	}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		status, err := r.Status(ctx)
		if err != nil {
			return err
		}
		if status.IsErrored() {
			return errStopped
		}
	}
}
