package searcher

import (
	"errors"
	"fmt"
	"lookahead/experiments/metrics"
	"lookahead/game"

	"github.com/rs/zerolog/log"
)

// frontierSearch is the control loop shared by the breadth, depth and
// cost-weighted policies. They differ in how an entry is popped, how its
// priority is computed and which priority the truncation fallback prefers.
type frontierSearch struct {
	policy   Policy
	evaluate game.Evaluate
	metrics  metrics.Collector
	pop      func(f *frontier) entry
	priority func(state game.State, o origin, rootScore float64) float64
	isBetter better

	// scoresRoot is set when priority depends on the root's evaluation
	scoresRoot bool
}

func (s *frontierSearch) RegisterInitialState(state game.State) {}

func (s *frontierSearch) Decide(root game.State) (game.Action, error) {
	s.metrics.Start(s.policy.String())

	action, outcome, err := s.search(root)
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	s.metrics.SetOutcome(outcome)

	log.Debug().
		Stringer("policy", s.policy).
		Stringer("action", action).
		Stringer("outcome", outcome).
		Err(err).
		Msg("decision")
	return action, err
}

func (s *frontierSearch) search(root game.State) (game.Action, metrics.Outcome, error) {
	legal := root.LegalActions()
	if len(legal) == 0 {
		return game.Stop, metrics.OutcomeFailed, ErrNoLegalAction
	}
	if len(legal) == 1 { // Searching can only confirm this action or give up with Stop
		return legal[0], metrics.OutcomeForced, nil
	}

	rootScore := 0.0
	if s.scoresRoot {
		rootScore = s.evaluate(root)
	}
	seen := provenance{}
	f := newFrontier()

	// Seed with one ply of root successors
	for _, action := range legal {
		child, err := root.Successor(action)
		if err != nil {
			return s.interrupted(f, err)
		}
		s.metrics.AddGenerated(1)
		s.push(f, seen, child, origin{action: action, depth: 0}, rootScore)
	}

	for f.Len() > 0 {
		current := s.pop(f)

		if current.state.IsWin() {
			return current.action, metrics.OutcomeWin, nil
		}
		if current.state.IsLose() {
			continue
		}

		s.metrics.AddExpansion()
		next := origin{action: current.action, depth: current.depth + 1}
		for _, action := range current.state.LegalActions() {
			child, err := current.state.Successor(action)
			if err != nil {
				// Successors already generated at this node stay on the frontier
				return s.interrupted(f, err)
			}
			s.metrics.AddGenerated(1)
			s.push(f, seen, child, next, rootScore)
		}
	}

	// Nothing left to explore and no win found
	return game.Stop, metrics.OutcomeExhaustedFrontier, nil
}

// push records the child's provenance, keeping the first discovery, and
// queues it with the priority derived from that provenance.
func (s *frontierSearch) push(f *frontier, seen provenance, child game.State, o origin, rootScore float64) {
	recorded := seen.record(child, o)
	f.push(entry{
		state:    child,
		priority: s.priority(child, recorded, rootScore),
		origin:   recorded,
	})
}

// interrupted handles a failed successor call. Budget exhaustion runs the
// truncation fallback; any other failure is the collaborator's and is
// returned to the caller.
func (s *frontierSearch) interrupted(f *frontier, err error) (game.Action, metrics.Outcome, error) {
	if !errors.Is(err, game.ErrExhausted) {
		return game.Stop, metrics.OutcomeFailed, fmt.Errorf("generating successor: %w", err)
	}

	action, won, err := fallback(f, s.isBetter)
	if err != nil {
		return game.Stop, metrics.OutcomeFailed, fmt.Errorf("%s search truncated: %w", s.policy, err)
	}
	if won {
		return action, metrics.OutcomeWin, nil
	}
	return action, metrics.OutcomeTruncated, nil
}
