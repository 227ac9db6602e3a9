package searcher

import (
	"fmt"
	"lookahead/experiments/metrics"
	"lookahead/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand    *rand.Rand
	metrics metrics.Collector
}

func newRandom(c *config) *randomAgent {
	return &randomAgent{rand: c.rand, metrics: c.metrics}
}

func (a *randomAgent) RegisterInitialState(state game.State) {}

func (a *randomAgent) Decide(state game.State) (game.Action, error) {
	a.metrics.Start(Random.String())

	actions := state.LegalActions()
	if len(actions) == 0 {
		a.metrics.SetOutcome(metrics.OutcomeFailed)
		return game.Stop, ErrNoLegalAction
	}

	a.metrics.SetOutcome(metrics.OutcomeReactive)
	return actions[a.rand.Intn(len(actions))], nil
}

type greedyAgent struct {
	rand     *rand.Rand
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newGreedy(c *config) *greedyAgent {
	return &greedyAgent{rand: c.rand, evaluate: c.evaluate, metrics: c.metrics}
}

func (a *greedyAgent) RegisterInitialState(state game.State) {}

func (a *greedyAgent) Decide(state game.State) (game.Action, error) {
	a.metrics.Start(Greedy.String())

	action, err := a.decide(state)
	if err != nil {
		a.metrics.SetOutcome(metrics.OutcomeFailed)
		log.Debug().Stringer("policy", Greedy).Err(err).Msg("decision failed")
		return game.Stop, err
	}
	a.metrics.SetOutcome(metrics.OutcomeReactive)
	return action, nil
}

// decide scores every one-ply successor and draws uniformly among the
// actions tied at the best score. The lookahead assumes the budget covers
// one ply, so exhaustion here is reported as an error.
func (a *greedyAgent) decide(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Stop, ErrNoLegalAction
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return game.Stop, fmt.Errorf("greedy lookahead on %s: %w", action, err)
		}
		a.metrics.AddGenerated(1)
		scores[i] = a.evaluate(child)
	}

	bestScore := scores[0]
	for _, score := range scores[1:] {
		bestScore = max(bestScore, score)
	}

	bestActions := make([]game.Action, 0, len(actions))
	for i, score := range scores {
		if score == bestScore {
			bestActions = append(bestActions, actions[i])
		}
	}
	return bestActions[a.rand.Intn(len(bestActions))], nil
}
