package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting a decision", func(t *testing.T) {
		c := NewCollector()
		c.Start("breadth")
		c.AddExpansion()
		c.AddExpansion()
		c.AddGenerated(3)
		c.SetOutcome(OutcomeTruncated)

		got := c.Complete()

		require.Equal(t, "breadth", got.Policy)
		require.Equal(t, 2, got.Expansions)
		require.Equal(t, 3, got.Generated)
		require.Equal(t, OutcomeTruncated, got.Outcome)
		require.GreaterOrEqual(t, got.Duration.Nanoseconds(), int64(0))
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("depth")
		c.AddExpansion()
		c.SetOutcome(OutcomeWin)
		c.Start("depth")

		got := c.Complete()

		require.Zero(t, got.Expansions)
		require.Equal(t, OutcomeNone, got.Outcome)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("greedy")
		c.AddGenerated(10)
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "exhausted-frontier", OutcomeExhaustedFrontier.String())
	require.Equal(t, "forced", OutcomeForced.String())
	require.Equal(t, "unknown", Outcome(42).String())
}

func TestGameMetricResult(t *testing.T) {
	require.Equal(t, "win", GameMetric{Won: true}.Result())
	require.Equal(t, "loss", GameMetric{Lost: true}.Result())
	require.Equal(t, "timeout", GameMetric{}.Result())
}
