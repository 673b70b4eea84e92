package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/chaser/core"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Action is what a key binding does
type Action uint8

const (
	ActionNone Action = iota // Unbind sentinel
	ActionNorth
	ActionSouth
	ActionEast
	ActionWest
	ActionStop
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap config
var actionRegistry = map[string]Action{
	"none":  ActionNone,
	"north": ActionNorth,
	"south": ActionSouth,
	"east":  ActionEast,
	"west":  ActionWest,
	"stop":  ActionStop,
	"quit":  ActionQuit,
}

// ParseAction resolves a config action name, case-insensitive
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Direction returns the movement direction of a directional action
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionNorth:
		return core.North, true
	case ActionSouth:
		return core.South, true
	case ActionEast:
		return core.East, true
	case ActionWest:
		return core.West, true
	}
	return 0, false
}
