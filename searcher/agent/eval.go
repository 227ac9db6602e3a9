package agent

import (
	"lookahead/experiments/metrics"
	"lookahead/game"
	"lookahead/searcher"

	"github.com/rs/zerolog/log"
)

type evaluationAgent struct {
	decider searcher.Decider
	metrics metrics.Collector
}

// NewEvaluationAgent returns an agent for actual game play. collector must be
// the one the decider reports to, or a dummy collector.
func NewEvaluationAgent(decider searcher.Decider, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return evaluationAgent{decider: decider, metrics: collector}
}

// New builds an evaluation agent running policy, with metrics collection.
func New(policy searcher.Policy, evaluate game.Evaluate, seed uint64) (Agent, error) {
	collector := metrics.NewCollector()
	decider, err := searcher.New(policy,
		searcher.WithEvaluationFn(evaluate),
		searcher.WithSeed(seed),
		searcher.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}
	return NewEvaluationAgent(decider, collector), nil
}

func (a evaluationAgent) RegisterInitialState(state game.State) {
	a.decider.RegisterInitialState(state)
}

// FindMove plays Stop when the decider fails, the failure is logged.
func (a evaluationAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	action, err := a.decider.Decide(state)
	metric := a.metrics.Complete()
	if err != nil {
		log.Warn().Err(err).Str("policy", metric.Policy).Msg("decision failed, playing stop")
		return game.Stop, metric
	}
	return action, metric
}
