package game

import (
	"fmt"
	"strings"
)

type Action int

const (
	Stop Action = iota // No-op, returned when no decision can be made
	North
	South
	East
	West
)

// Actions lists every movement action in a fixed order. Stop is excluded.
var Actions = []Action{North, South, East, West}

var actionNames = map[Action]string{
	Stop:  "stop",
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Delta returns the column and row offset of a movement action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return Stop, fmt.Errorf("unknown action %q", s)
}
