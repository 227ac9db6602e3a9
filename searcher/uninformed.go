package searcher

import "lookahead/game"

func evaluationPriority(evaluate game.Evaluate) func(game.State, origin, float64) float64 {
	return func(state game.State, _ origin, _ float64) float64 {
		return evaluate(state)
	}
}

// newBreadthFirst expands the oldest discovered state first. When the budget
// runs out it falls back on the highest scoring state left on the frontier.
func newBreadthFirst(c *config) *frontierSearch {
	return &frontierSearch{
		policy:   Breadth,
		evaluate: c.evaluate,
		metrics:  c.metrics,
		pop:      (*frontier).popFront,
		priority: evaluationPriority(c.evaluate),
		isBetter: maxIsBest,
	}
}

// newDepthFirst expands the newest discovered state first, with the same
// fallback as breadth first.
func newDepthFirst(c *config) *frontierSearch {
	return &frontierSearch{
		policy:   Depth,
		evaluate: c.evaluate,
		metrics:  c.metrics,
		pop:      (*frontier).popBack,
		priority: evaluationPriority(c.evaluate),
		isBetter: maxIsBest,
	}
}
