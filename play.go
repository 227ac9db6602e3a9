package main

import (
	"fmt"
	"io"
	"lookahead/engine"
	"lookahead/experiments/metrics"
	"lookahead/game/maze"
	"lookahead/searcher"
	"lookahead/searcher/agent"

	"github.com/spf13/cobra"
)

type playOptions struct {
	policy    string
	layout    string
	evaluator string
	budget    int
	maxTurns  int
	seed      uint64
	render    bool
}

var play playOptions

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game with a decision policy",
	Example: `  lookahead play --policy bfs --layout small --budget 200 --seed 1 --render
  lookahead play --policy costWeighted --layout ./mazes/corridor.lay --evaluator food-distance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd.OutOrStdout(), play)
	},
}

func init() {
	flags := playCmd.Flags()
	flags.StringVar(&play.policy, "policy", "breadth", "Decision policy (random, greedy, breadth/bfs, depth/dfs, costWeighted/astar)")
	flags.StringVar(&play.layout, "layout", "small", "Built-in layout name or path to a layout file")
	flags.StringVar(&play.evaluator, "evaluator", "score", "State evaluation function (score, food-distance)")
	flags.IntVar(&play.budget, "budget", engine.DefaultBudget, "Successor calls allowed per decision, must be positive")
	flags.IntVar(&play.maxTurns, "max-turns", engine.DefaultMaxTurns, "Turn limit before the game times out")
	flags.Uint64Var(&play.seed, "seed", 1, "Seed for random draws and tie breaks")
	flags.BoolVar(&play.render, "render", false, "Draw the board after every move")
	rootCmd.AddCommand(playCmd)
}

func runPlay(out io.Writer, opts playOptions) error {
	if opts.budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d", opts.budget)
	}
	policy, err := searcher.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}
	evaluate, err := maze.Evaluator(opts.evaluator)
	if err != nil {
		return err
	}
	layout, err := maze.ResolveLayout(opts.layout)
	if err != nil {
		return err
	}

	a, err := agent.New(policy, evaluate, opts.seed)
	if err != nil {
		return err
	}

	options := []engine.Option{
		engine.WithBudget(opts.budget),
		engine.WithMaxTurns(opts.maxTurns),
	}
	if opts.render {
		options = append(options, engine.WithRenderer(out))
	}

	gameMetric, moveMetrics := engine.New(a, maze.NewState(layout), options...).Run()

	truncated := 0
	for _, mm := range moveMetrics {
		if mm.Outcome == metrics.OutcomeTruncated {
			truncated++
		}
	}
	fmt.Fprintf(out, "%s on %s: %s, score %d after %d moves (%d truncated searches) in %s\n",
		policy, layout.Name, gameMetric.Result(), gameMetric.Score, gameMetric.TotalMoves, truncated, gameMetric.Duration)
	return nil
}
