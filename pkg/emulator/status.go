package emulator

// Status represents the status of the emulator's
// CPU. It can be one of the following:
//
//   - Paused
//   - Running
//   - Errored
type Status int

const (
	// Paused represents the status of the CPU when
	// nothing is stepping it. A new Emulator starts
	// paused.
	Paused Status = iota
	// Running represents the status of the
	// CPU when a Runner is free-running it.
	Running
	// Errored represents the status of the
	// CPU when it has fetched an opcode it
	// cannot execute.
	Errored
)

func (s Status) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsPaused() bool {
	return s == Paused
}

func (s Status) IsErrored() bool {
	return s == Errored
}
