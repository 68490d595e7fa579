package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/abacwrsed/internal/world/entity"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

var flagAll bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the level's obstacle placements",
	Long: `Print how many obstacles of each kind the level places, or every
placement with --all. No assets are loaded.`,
	Run: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "List every placement")
}

func runLayout(cmd *cobra.Command, args []string) {
	placements := level.Layout()
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := 4 // "Kind" header
	for _, k := range entity.Kinds() {
		if len(k.String()) > maxNameLen {
			maxNameLen = len(k.String())
		}
	}

	if flagAll {
		fmt.Fprintf(out, "  %-*s  %6s  %6s\n", maxNameLen, "Kind", "X", "Y")
		for _, p := range placements {
			fmt.Fprintf(out, "  %-*s  %6.0f  %6.0f\n", maxNameLen, p.Kind, p.X, p.Y)
		}
		fmt.Fprintln(out)
	}

	counts := level.Counts(placements)
	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxNameLen, "Kind", "Count", "Effect")
	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxNameLen, "----", "-----", "------")
	for _, k := range entity.Kinds() {
		fmt.Fprintf(out, "  %-*s  %5d  %s\n", maxNameLen, k, counts[k], k.Info().Effect)
	}
	fmt.Fprintf(out, "\n%d obstacles\n", len(placements))
}
