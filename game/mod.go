package game

import "errors"

// ErrExhausted is returned by State.Successor once the simulation's step
// budget is spent. It is a cooperative stop notice, not a rule violation.
var ErrExhausted = errors.New("successor budget exhausted")

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	// LegalActions is never queried on a terminal state
	LegalActions() []Action
	// Successor returns the state reached by playing action, or an error
	// wrapping ErrExhausted when no more successors may be generated
	Successor(action Action) (State, error)
	IsWin() bool
	IsLose() bool
	// Hash identifies the state, equal states must hash equal
	Hash() StateHash
}

// IsTerminal reports whether the state is won or lost.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}

// Evaluates the game state to a score, higher is better for the agent.
// Implementations must be pure.
type Evaluate func(State) float64
