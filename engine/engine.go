package engine

import "lookahead/experiments/metrics"

const (
	DefaultMaxTurns = 500
	DefaultBudget   = 200 // Successor calls allowed per decision
)

type Engine interface {
	// Run plays a game till it is won, lost or the turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
