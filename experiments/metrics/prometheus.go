package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Exporter publishes game and decision metrics on its own registry.
type Exporter struct {
	registry  *prometheus.Registry
	games     *prometheus.CounterVec
	decisions *prometheus.CounterVec
	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		games: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookahead_games_total",
				Help: "Games played, by policy, layout and result",
			},
			[]string{"policy", "layout", "result"},
		),
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookahead_decisions_total",
				Help: "Decisions taken, by policy and search outcome",
			},
			[]string{"policy", "outcome"},
		),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lookahead_successors_generated_total",
				Help: "Successor states generated while deciding",
			},
			[]string{"policy"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lookahead_decision_duration_seconds",
				Help:    "Time spent on a single decision",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"policy"},
		),
	}
	e.registry.MustRegister(e.games, e.decisions, e.generated, e.duration)
	return e
}

func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

func (e *Exporter) ObserveGame(game GameMetric, moves []MoveMetric) {
	e.games.WithLabelValues(game.Policy, game.Layout, game.Result()).Inc()
	for _, move := range moves {
		e.decisions.WithLabelValues(move.Policy, move.Outcome.String()).Inc()
		e.generated.WithLabelValues(move.Policy).Add(float64(move.Generated))
		e.duration.WithLabelValues(move.Policy).Observe(move.Duration.Seconds())
	}
}

// WriteTextfile dumps every metric in the text exposition format, for the
// node exporter's textfile collector.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
