package main

import (
	"fmt"
	"io"
	"lookahead/experiments"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run every configured policy on every configured layout",
	Long: `Runs the experiment described by a YAML config file and prints a summary
per policy and layout. Records are written as CSV under output_dir and, when
metrics_file is set, Prometheus metrics are written in the textfile format.
Without --config the default experiment is run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg := experiments.DefaultConfig()
		if path != "" {
			var err error
			cfg, err = experiments.LoadConfig(path)
			if err != nil {
				return err
			}
		}

		summaries, err := experiments.Run(cfg)
		if err != nil {
			return err
		}
		return printSummaries(cmd.OutOrStdout(), summaries)
	},
}

func init() {
	experimentCmd.Flags().String("config", "", "Path to the experiment YAML config")
	rootCmd.AddCommand(experimentCmd)
}

func printSummaries(out io.Writer, summaries []experiments.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYOUT\tPOLICY\tGAMES\tWINS\tLOSSES\tTIMEOUTS\tAVG SCORE\tAVG MOVES")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.1f\t%.1f\n",
			s.Layout, s.Policy, s.Games, s.Wins, s.Losses, s.Timeouts, s.AverageScore, s.AverageMoves)
	}
	return w.Flush()
}
