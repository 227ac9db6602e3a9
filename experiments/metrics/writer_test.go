package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, w.WritePolicyConfigs([]PolicyConfig{
		{ID: 1, Policy: "breadth", Evaluator: "score", Budget: 200, MaxTurns: 100},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Config: 1, GameMetric: GameMetric{
			Policy: "breadth", Layout: "tiny", Seed: 9, Won: true, Score: 515,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 5,
		}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Action: "east", Score: -1, SearchMetric: SearchMetric{
			Policy: "breadth", Expansions: 4, Generated: 8, Outcome: OutcomeTruncated, Duration: time.Millisecond,
		}}},
	}))

	configs := readCSV(t, filepath.Join(w.Dir(), "policy_configs.csv"))
	require.Equal(t, []string{"1", "breadth", "score", "200", "100"}, configs[1])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1", "breadth", "tiny", "9", "win", "515", "5",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "east", "-1", "breadth", "truncated", "4", "8", "1ms"}, moves[1])
}
