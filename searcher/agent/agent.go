package agent

import (
	"lookahead/experiments/metrics"
	"lookahead/game"
)

type Agent interface {
	// RegisterInitialState is called once when a game starts
	RegisterInitialState(state game.State)
	// FindMove returns the action to play and the metrics of the search that chose it
	FindMove(state game.State) (game.Action, metrics.SearchMetric)
}
