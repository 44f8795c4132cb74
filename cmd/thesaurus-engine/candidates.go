// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thesaurus-engine/internal/merge"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates [file] [term]",
	Short: "Suggest merge targets for a term",
	Long: `Candidates lists up to five terms from the term list that share a
significant word (longer than three characters) with the given term.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCandidates,
}

func init() {
	candidatesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	records, err := loadTerms(args[0], "")
	if err != nil {
		return err
	}
	term := strings.Join(args[1:], " ")
	cands := merge.FindCandidates(term, records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(os.Stdout, cands)
	}

	if len(cands) == 0 {
		fmt.Fprintf(os.Stdout, "No merge candidates for %q.\n", term)
		return nil
	}
	fmt.Fprintf(os.Stdout, "%-5s  %-40s  %6s  %9s\n", "ID", "TERM", "OCC", "RELEVANCE")
	for _, r := range cands {
		fmt.Fprintf(os.Stdout, "%-5d  %-40s  %6d  %9.4f\n", r.ID, truncate(r.Term, 40), r.Occurrences, r.Relevance)
	}
	return nil
}
