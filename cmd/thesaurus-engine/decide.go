// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thesaurus-engine/internal/review"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

var decideCmd = &cobra.Command{
	Use:   "decide [file]",
	Short: "Record a reviewer decision in a decisions file",
	Long: `Decide records a final action (KEEP, MERGE, ELIMINATE) for one term and
saves it to the decisions file given by --decisions. Existing decisions in
the file are kept; a new decision for the same term replaces the old one.
MERGE requires --target.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	decideCmd.Flags().Int("id", 0, "term id")
	decideCmd.Flags().String("action", "", "final action: KEEP, MERGE, or ELIMINATE")
	decideCmd.Flags().String("target", "", "merge target (required for MERGE)")
	decisionsFlag(decideCmd)
	_ = decideCmd.MarkFlagRequired("id")
	_ = decideCmd.MarkFlagRequired("action")
	_ = decideCmd.MarkFlagRequired("decisions")

	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	decisionsPath, _ := cmd.Flags().GetString("decisions")
	id, _ := cmd.Flags().GetInt("id")
	action, _ := cmd.Flags().GetString("action")
	target, _ := cmd.Flags().GetString("target")

	// A missing decisions file starts an empty review.
	existing := ""
	if _, err := os.Stat(decisionsPath); err == nil {
		existing = decisionsPath
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking decisions file: %w", err)
	}

	records, err := loadTerms(args[0], existing)
	if err != nil {
		return err
	}
	records, err = review.Decide(records, id, types.Action(action), target)
	if err != nil {
		return err
	}
	if err := review.WriteDecisionsFile(decisionsPath, records); err != nil {
		return err
	}

	for _, r := range records {
		if r.ID != id {
			continue
		}
		if r.MergeTarget != "" {
			fmt.Fprintf(os.Stdout, "%d %q: %s -> %q\n", r.ID, r.Term, r.FinalAction, r.MergeTarget)
		} else {
			fmt.Fprintf(os.Stdout, "%d %q: %s\n", r.ID, r.Term, r.FinalAction)
		}
	}
	return nil
}
