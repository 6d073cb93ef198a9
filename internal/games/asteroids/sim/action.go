package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned when an action value or name is outside the action set.
var ErrInvalidAction = errors.New("sim: invalid action")

// Action is one discrete ship command per frame. The same set is used by the
// keyboard front-end and by headless agents.
type Action int

const (
	ActionNoop Action = iota
	ActionRotateLeft
	ActionRotateRight
	ActionThrustUp
	ActionThrustDown
	ActionFire
)

// NumActions is the size of the action set.
const NumActions = int(ActionFire) + 1

var actionNames = [...]string{
	ActionNoop:        "noop",
	ActionRotateLeft:  "rotate_left",
	ActionRotateRight: "rotate_right",
	ActionThrustUp:    "thrust_up",
	ActionThrustDown:  "thrust_down",
	ActionFire:        "fire",
}

// Valid reports whether a is part of the action set.
func (a Action) Valid() bool {
	return a >= ActionNoop && a <= ActionFire
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction converts an action name into an Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNoop, fmt.Errorf("%w: %q", ErrInvalidAction, name)
}

// ActionFromIndex converts an agent's integer choice into an Action.
func ActionFromIndex(i int) (Action, error) {
	a := Action(i)
	if !a.Valid() {
		return ActionNoop, fmt.Errorf("%w: %d", ErrInvalidAction, i)
	}
	return a, nil
}
