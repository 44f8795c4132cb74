// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thesaurus-engine/internal/stats"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show classification and validation statistics for a term list",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "output as JSON")
	decisionsFlag(statsCmd)

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	decisionsPath, _ := cmd.Flags().GetString("decisions")
	records, err := loadTerms(args[0], decisionsPath)
	if err != nil {
		return err
	}
	s := stats.Aggregate(records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(os.Stdout, struct {
			Statistics types.Statistics `json:"statistics"`
			Progress   float64          `json:"progress"`
		}{s, s.Progress()})
	}

	fmt.Fprintf(os.Stdout, "Terms:      %d\n", s.Total)
	fmt.Fprintf(os.Stdout, "Validated:  %d\n", s.Validated)
	fmt.Fprintf(os.Stdout, "Pending:    %d\n", s.Pending)
	fmt.Fprintf(os.Stdout, "Progress:   %.1f%% complete\n", s.Progress())

	fmt.Fprintln(os.Stdout, "\nActions:")
	fmt.Fprintf(os.Stdout, "  %-10s %d\n", types.ActionKeep, s.Actions.Keep)
	fmt.Fprintf(os.Stdout, "  %-10s %d\n", types.ActionMerge, s.Actions.Merge)
	fmt.Fprintf(os.Stdout, "  %-10s %d\n", types.ActionEliminate, s.Actions.Eliminate)
	fmt.Fprintf(os.Stdout, "  %-10s %d\n", types.ActionReview, s.Actions.Review)
	fmt.Fprintf(os.Stdout, "  %-10s %d\n", types.ActionEvaluate, s.Actions.Evaluate)

	fmt.Fprintln(os.Stdout, "\nCategories:")
	for _, c := range types.Categories() {
		fmt.Fprintf(os.Stdout, "  %-16s %d\n", c, s.Categories[c])
	}
	return nil
}
