package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type PolicyConfig struct {
	ID        int
	Policy    string
	Evaluator string
	Budget    int
	MaxTurns  int
}

type GameRecord struct {
	ID     int
	Config int // PolicyConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's records.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WritePolicyConfigs(configs []PolicyConfig) error {
	header := []string{"id", "policy", "evaluator", "budget", "max_turns"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Policy,
			config.Evaluator,
			strconv.Itoa(config.Budget),
			strconv.Itoa(config.MaxTurns),
		})
	}
	return w.writeCSV("policy_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "config", "policy", "layout", "seed", "result", "score", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.Policy,
			record.Layout,
			strconv.FormatUint(record.Seed, 10),
			record.Result(),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "action", "score", "policy", "outcome", "expansions", "generated", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Action,
			strconv.Itoa(record.Score),
			record.Policy,
			record.Outcome.String(),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Generated),
			record.Duration.String(),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}
