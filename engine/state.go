package engine

import (
	"fmt"

	"github.com/lixenwraith/chaser/grid"
)

// State of the simulation loop
type State uint32

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "running":
		*s = Running
	case "stopped":
		*s = Stopped
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}

// Snapshot is an immutable view of the world after a tick
// Grid is a private clone, safe to read from any goroutine.
type Snapshot struct {
	Tick       uint64
	State      State
	ChaserTurn bool
	Grid       *grid.Grid
}

// Observer receives a snapshot after every tick, on the loop goroutine
type Observer func(Snapshot)
