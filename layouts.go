package main

import (
	"fmt"
	"lookahead/game/maze"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the built-in layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range maze.LayoutNames() {
			l, err := maze.BuiltinLayout(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-8s %dx%d, %d food\n", l.Name, l.Width, l.Height, l.FoodCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
