package searcher

import "lookahead/game"

// origin is the root-level action leading to a state and the number of
// expansions between the root and that state.
type origin struct {
	action game.Action
	depth  int
}

// entry is a frontier element: a discovered state waiting to be expanded.
type entry struct {
	state    game.State
	priority float64
	origin
}

// provenance maps a state to the origin recorded when it was first
// discovered. Later rediscoveries never overwrite it.
type provenance map[game.StateHash]origin

func (p provenance) record(state game.State, o origin) origin {
	hash := state.Hash()
	if first, ok := p[hash]; ok {
		return first
	}
	p[hash] = o
	return o
}
