package agent

import (
	"errors"
	"lookahead/experiments/metrics"
	"lookahead/game"
	"lookahead/game/maze"
	"lookahead/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockDecider struct {
	action     game.Action
	err        error
	registered int
	decided    int
}

func (m *mockDecider) RegisterInitialState(state game.State) {
	m.registered++
}

func (m *mockDecider) Decide(state game.State) (game.Action, error) {
	m.decided++
	return m.action, m.err
}

func TestEvaluationAgent(t *testing.T) {
	state := maze.NewState(mustLayout(t))

	t.Run("returning the decided action", func(t *testing.T) {
		decider := &mockDecider{action: game.East}
		a := NewEvaluationAgent(decider, nil)

		a.RegisterInitialState(state)
		action, _ := a.FindMove(state)

		require.Equal(t, game.East, action)
		require.Equal(t, 1, decider.registered)
		require.Equal(t, 1, decider.decided)
	})

	t.Run("playing stop on failure", func(t *testing.T) {
		decider := &mockDecider{action: game.East, err: errors.New("boom")}
		a := NewEvaluationAgent(decider, nil)

		action, _ := a.FindMove(state)

		require.Equal(t, game.Stop, action, "A failed decision should fall back to stop")
	})
}

func TestNew(t *testing.T) {
	t.Run("collecting search metrics", func(t *testing.T) {
		a, err := New(searcher.Breadth, maze.ScoreEvaluation, 1)
		require.NoError(t, err)

		state := maze.NewState(mustLayout(t)).WithBudget(100)
		action, metric := a.FindMove(state)

		require.Equal(t, game.East, action, "Food lies east")
		require.Equal(t, "breadth", metric.Policy)
		require.Equal(t, metrics.OutcomeWin, metric.Outcome)
		require.Positive(t, metric.Generated)
	})

	t.Run("missing evaluation function", func(t *testing.T) {
		_, err := New(searcher.Greedy, nil, 1)
		require.Error(t, err)
	})
}

func mustLayout(t *testing.T) *maze.Layout {
	t.Helper()
	l, err := maze.ParseLayout("test", "%%%%%%\n%  P.%\n%%%%%%")
	require.NoError(t, err)
	return l
}
