package searcher

import "lookahead/game"

// better reports whether priority a ranks strictly ahead of b.
type better func(a, b float64) bool

func maxIsBest(a, b float64) bool { return a > b }

func minIsBest(a, b float64) bool { return a < b }

// fallback picks the action to play once successor generation has been cut
// short. The frontier is scanned in order: the first winning entry is taken
// as is, losing entries are pruned, and among the rest the entry with the
// best priority wins, earliest first on ties.
func fallback(f *frontier, isBetter better) (action game.Action, won bool, err error) {
	found := false
	var best entry
	for i := 0; i < f.Len(); {
		e := f.at(i)
		if e.state.IsWin() {
			return e.action, true, nil
		}
		if e.state.IsLose() {
			f.removeAt(i)
			continue
		}
		if !found || isBetter(e.priority, best.priority) {
			best = e
			found = true
		}
		i++
	}

	if !found {
		return game.Stop, false, ErrNoCandidate
	}
	return best.action, false, nil
}
