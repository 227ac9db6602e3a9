package experiments

import (
	"fmt"
	"lookahead/engine"
	"lookahead/experiments/metrics"
	"lookahead/game"
	"lookahead/game/maze"
	"lookahead/searcher"
	"lookahead/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Summary aggregates the games one policy played on one layout.
type Summary struct {
	Policy       string
	Layout       string
	Games        int
	Wins         int
	Losses       int
	Timeouts     int
	AverageScore float64
	AverageMoves float64
}

func (s *Summary) add(g metrics.GameMetric) {
	n := float64(s.Games)
	s.AverageScore = (s.AverageScore*n + float64(g.Score)) / (n + 1)
	s.AverageMoves = (s.AverageMoves*n + float64(g.TotalMoves)) / (n + 1)
	s.Games++
	switch {
	case g.Won:
		s.Wins++
	case g.Lost:
		s.Losses++
	default:
		s.Timeouts++
	}
}

// Run plays every configured policy on every layout and stores the records.
// Game i of a match-up is seeded with cfg.Seed+i, so all policies face the
// same sequence of seeds. Up to cfg.Workers games run at once.
func Run(cfg Config) ([]Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	evaluate, err := maze.Evaluator(cfg.Evaluator)
	if err != nil {
		return nil, err
	}

	policies := make([]searcher.Policy, 0, len(cfg.Policies))
	configs := make([]metrics.PolicyConfig, 0, len(cfg.Policies))
	for i, name := range cfg.Policies {
		policy, err := searcher.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
		configs = append(configs, metrics.PolicyConfig{
			ID:        i + 1,
			Policy:    policy.String(),
			Evaluator: cfg.Evaluator,
			Budget:    cfg.Budget,
			MaxTurns:  cfg.MaxTurns,
		})
	}

	layouts := make([]*maze.Layout, 0, len(cfg.Layouts))
	for _, name := range cfg.Layouts {
		layout, err := maze.ResolveLayout(name)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, layout)
	}

	// One result slot per game, filled concurrently and read back in order so
	// record IDs do not depend on scheduling.
	type result struct {
		game  metrics.GameMetric
		moves []metrics.MoveMetric
	}
	results := make([]result, len(layouts)*len(policies)*cfg.Games)
	slot := func(li, pi, i int) int {
		return (li*len(policies)+pi)*cfg.Games + i
	}

	log.Info().Msgf("starting %s experiment with %d games on %d workers...", cfg.Name, len(results), cfg.Workers)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for li, layout := range layouts {
		for pi, policy := range policies {
			for i := 0; i < cfg.Games; i++ {
				li, pi, i, layout, policy := li, pi, i, layout, policy
				g.Go(func() error {
					seed := cfg.Seed + uint64(i)
					gameMetric, moveMetrics, err := runGame(policy, evaluate, layout, seed, cfg)
					if err != nil {
						return err
					}
					results[slot(li, pi, i)] = result{game: gameMetric, moves: moveMetrics}
					log.Debug().Msgf("completed %s on %s game %d of %d: %s with score %d",
						policy, layout.Name, i+1, cfg.Games, gameMetric.Result(), gameMetric.Score)
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exporter := metrics.NewExporter()
	summaries := make([]Summary, 0, len(layouts)*len(policies))
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for li, layout := range layouts {
		for pi, policy := range policies {
			summary := Summary{Policy: policy.String(), Layout: layout.Name}
			for i := 0; i < cfg.Games; i++ {
				r := results[slot(li, pi, i)]
				id := len(gameRecords) + 1
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         id,
					Config:     configs[pi].ID,
					GameMetric: r.game,
				})
				for _, mm := range r.moves {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       id,
						MoveMetric: mm,
					})
				}
				exporter.ObserveGame(r.game, r.moves)
				summary.add(r.game)
			}

			log.Info().Msgf("completed %s on %s: %d wins, %d losses, %d timeouts, average score %.1f",
				summary.Policy, summary.Layout, summary.Wins, summary.Losses, summary.Timeouts, summary.AverageScore)
			summaries = append(summaries, summary)
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir != "" {
		if err := store(cfg, configs, gameRecords, moveRecords); err != nil {
			return nil, err
		}
	}
	if cfg.MetricsFile != "" {
		if err := exporter.WriteTextfile(cfg.MetricsFile); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored metrics in %s", cfg.MetricsFile)
	}

	return summaries, nil
}

func runGame(policy searcher.Policy, evaluate game.Evaluate, layout *maze.Layout, seed uint64, cfg Config) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a, err := agent.New(policy, evaluate, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("failed to create %s agent: %w", policy, err)
	}
	e := engine.New(a, maze.NewState(layout),
		engine.WithBudget(cfg.Budget),
		engine.WithMaxTurns(cfg.MaxTurns),
	)

	gameMetric, moveMetrics := e.Run()
	gameMetric.Policy = policy.String()
	gameMetric.Seed = seed
	return gameMetric, moveMetrics, nil
}

func store(cfg Config, configs []metrics.PolicyConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WritePolicyConfigs(configs); err != nil {
		return fmt.Errorf("failed to store policy configs: %w", err)
	}
	log.Info().Msg("stored policy configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
