// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/thesaurus-engine/internal/review"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and pre-classify a VOSviewer term list",
	Long: `Parse reads a tab-delimited term list exported from VOSviewer (columns:
id, term, occurrences, relevance score), classifies every term, and prints
one batch of the result. Malformed lines are skipped with a warning.

Use --decisions to show reviewer decisions recorded in a decisions file.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Int("page", 1, "batch number to display (1-based)")
	parseCmd.Flags().Int("batch-size", 0, "terms per batch (default from review.batch_size)")
	parseCmd.Flags().Bool("all", false, "print every term instead of one batch")
	parseCmd.Flags().Bool("json", false, "output as JSON")
	decisionsFlag(parseCmd)

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	decisionsPath, _ := cmd.Flags().GetString("decisions")
	records, err := loadTerms(args[0], decisionsPath)
	if err != nil {
		return err
	}

	pageNum, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("batch-size")
	if size <= 0 {
		size = viper.GetInt("review.batch_size")
	}
	if all, _ := cmd.Flags().GetBool("all"); all && len(records) > 0 {
		size = len(records)
		pageNum = 1
	}
	page := review.Paginate(records, pageNum, size)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(os.Stdout, page)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No terms found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-32s  %6s  %9s  %-16s  %-9s  %-6s  %s\n",
		"ID", "TERM", "OCC", "RELEVANCE", "CATEGORY", "ACTION", "CONF", "DECISION")
	for _, r := range page.Records {
		decision := "-"
		if r.Validated {
			decision = string(r.FinalAction)
			if r.MergeTarget != "" {
				decision += " -> " + r.MergeTarget
			}
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-32s  %6d  %9.4f  %-16s  %-9s  %-6s  %s\n",
			r.ID, truncate(r.Term, 32), r.Occurrences, r.Relevance,
			r.Category, r.Action, r.Confidence, decision)
	}
	fmt.Fprintf(os.Stdout, "\nBatch %d of %d (%d terms)\n", page.Number, page.Total, len(records))
	if page.HasPrev() {
		fmt.Fprintf(os.Stdout, "Previous: --page %d\n", page.Number-1)
	}
	if page.HasNext() {
		fmt.Fprintf(os.Stdout, "Next:     --page %d\n", page.Number+1)
	}
	return nil
}
