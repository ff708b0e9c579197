package emulator

import (
	"context"
	"time"
)

// CommandPacket is a command packet that is sent to the
// Runner to control it. Only the fields relevant to the
// Command need to be set.
type CommandPacket struct {
	Command Command

	// Count is the number of instructions for CommandStep
	// and the number of bytes for CommandPeek.
	Count int
	// Address is the first address for CommandPeek and
	// CommandPoke.
	Address uint16
	// Data holds the bytes written by CommandPoke, or the
	// state restored by CommandLoadState.
	Data []byte
	// Interval is the pacing interval for CommandSetSpeed.
	Interval time.Duration

	// ctx is the context of the request, set by the Runner when the
	// packet is sent.
	ctx      context.Context
	response chan ResponsePacket
}

// Command is a command that is sent to the Runner to
// control it.
type Command int

// ResponsePacket is a response packet that is sent
// from the Runner to the client.
type ResponsePacket struct {
	Command  Command
	Data     []byte
	Snapshot Snapshot
	Status   Status
	Error    error
}

const (
	// CommandPause stops free-running the emulator.
	CommandPause Command = iota
	// CommandResume starts free-running the emulator.
	CommandResume
	// CommandClose closes the Runner.
	CommandClose
	// CommandReset resets the emulator to its initial state.
	CommandReset
	// CommandStep executes Count instructions.
	CommandStep
	// CommandSnapshot returns a Snapshot of the CPU.
	CommandSnapshot
	// CommandStatus returns the Status of the emulator.
	CommandStatus
	// CommandPeek reads Count bytes from Address.
	CommandPeek
	// CommandPoke writes Data to Address.
	CommandPoke
	// CommandSetSpeed sets the interval between free-running
	// steps. Zero runs as fast as possible.
	CommandSetSpeed
	// CommandSaveState returns a serialised state in Data.
	CommandSaveState
	// CommandLoadState restores the serialised state in Data.
	CommandLoadState
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandClose:
		return "Close"
	case CommandReset:
		return "Reset"
	case CommandStep:
		return "Step"
	case CommandSnapshot:
		return "Snapshot"
	case CommandStatus:
		return "Status"
	case CommandPeek:
		return "Peek"
	case CommandPoke:
		return "Poke"
	case CommandSetSpeed:
		return "SetSpeed"
	case CommandSaveState:
		return "SaveState"
	case CommandLoadState:
		return "LoadState"
	default:
		return "Unknown"
	}
}
