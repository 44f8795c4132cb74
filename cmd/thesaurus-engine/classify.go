// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thesaurus-engine/internal/classify"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [term]",
	Short: "Classify a single term and show which rule fired",
	Long: `Classify runs the rule cascade on one term with the given occurrence
count and relevance score and prints the suggested category, action,
confidence, and justification.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Int("occurrences", 0, "occurrence count")
	classifyCmd.Flags().Float64("relevance", 0, "relevance score")
	classifyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(classifyCmd)
}

type classifyResult struct {
	Term        string  `json:"term"`
	Occurrences int     `json:"occurrences"`
	Relevance   float64 `json:"relevance"`
	Rule        string  `json:"rule"`
	types.Classification
}

func runClassify(cmd *cobra.Command, args []string) error {
	term := strings.TrimSpace(strings.Join(args, " "))
	occurrences, _ := cmd.Flags().GetInt("occurrences")
	relevance, _ := cmd.Flags().GetFloat64("relevance")
	if occurrences < 0 {
		return fmt.Errorf("occurrences must not be negative")
	}

	c, rule := classify.Explain(term, occurrences, relevance)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(os.Stdout, classifyResult{
			Term:           term,
			Occurrences:    occurrences,
			Relevance:      relevance,
			Rule:           rule,
			Classification: c,
		})
	}

	fmt.Fprintf(os.Stdout, "Term:          %s\n", term)
	fmt.Fprintf(os.Stdout, "Category:      %s\n", c.Category)
	fmt.Fprintf(os.Stdout, "Action:        %s\n", c.Action)
	fmt.Fprintf(os.Stdout, "Confidence:    %s\n", c.Confidence)
	fmt.Fprintf(os.Stdout, "Rule:          %s\n", rule)
	fmt.Fprintf(os.Stdout, "Justification: %s\n", c.Justification)
	return nil
}
