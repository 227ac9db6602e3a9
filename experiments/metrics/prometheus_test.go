package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestExporter(t *testing.T) {
	e := NewExporter()
	game := GameMetric{Policy: "depth", Layout: "small", Lost: true}
	moves := []MoveMetric{
		{SearchMetric: SearchMetric{Policy: "depth", Outcome: OutcomeTruncated, Generated: 10, Duration: time.Millisecond}},
		{SearchMetric: SearchMetric{Policy: "depth", Outcome: OutcomeWin, Generated: 5, Duration: time.Millisecond}},
		{SearchMetric: SearchMetric{Policy: "depth", Outcome: OutcomeTruncated, Generated: 7, Duration: time.Millisecond}},
	}

	e.ObserveGame(game, moves)

	require.Equal(t, 1.0, testutil.ToFloat64(e.games.WithLabelValues("depth", "small", "loss")))
	require.Equal(t, 2.0, testutil.ToFloat64(e.decisions.WithLabelValues("depth", "truncated")))
	require.Equal(t, 22.0, testutil.ToFloat64(e.generated.WithLabelValues("depth")))

	t.Run("writing a textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lookahead.prom")

		require.NoError(t, e.WriteTextfile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `lookahead_games_total{layout="small",policy="depth",result="loss"} 1`)
	})
}
