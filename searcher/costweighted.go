package searcher

import "lookahead/game"

// figureOfMerit is the cost so far minus the evaluation gained over the
// root. Lower is better. The evaluation serves as both path cost proxy and
// heuristic, so this is best-first search, not an admissible A*.
func figureOfMerit(depth int, score, rootScore float64) float64 {
	return float64(depth) - (score - rootScore)
}

func newCostWeighted(c *config) *frontierSearch {
	evaluate := c.evaluate
	priority := func(state game.State, o origin, rootScore float64) float64 {
		return figureOfMerit(o.depth, evaluate(state), rootScore)
	}
	return &frontierSearch{
		policy:     CostWeighted,
		evaluate:   evaluate,
		metrics:    c.metrics,
		pop:        (*frontier).popMin,
		priority:   priority,
		isBetter:   minIsBest,
		scoresRoot: true,
	}
}
