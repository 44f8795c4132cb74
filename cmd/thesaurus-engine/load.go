// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/thesaurus-engine/internal/parse"
	"github.com/pdiddy/thesaurus-engine/internal/review"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// loadTerms parses the term list at path and, when decisionsPath is set,
// replays the reviewer's decisions onto it. Skipped lines and rejected
// decisions are logged and do not fail the command.
func loadTerms(path, decisionsPath string) ([]types.TermRecord, error) {
	records, warnings, err := parse.File(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn("Skipping malformed line",
			zap.String("file", path),
			zap.Int("line", w.Line),
			zap.String("reason", w.Reason))
	}
	logger.Debug("Parsed term list", zap.String("file", path), zap.Int("terms", len(records)))

	if decisionsPath == "" {
		return records, nil
	}

	df, err := review.ReadDecisionsFile(decisionsPath)
	if err != nil {
		return nil, err
	}
	records, errs := review.Apply(records, df.Decisions)
	for _, e := range errs {
		logger.Warn("Rejected decision",
			zap.String("file", decisionsPath),
			zap.Int("entry", e.Index+1),
			zap.Int("id", e.Decision.ID),
			zap.Error(e.Err))
	}
	logger.Debug("Applied decisions",
		zap.Int("applied", len(df.Decisions)-len(errs)),
		zap.Int("rejected", len(errs)))
	return records, nil
}

func decisionsFlag(cmd *cobra.Command) {
	cmd.Flags().String("decisions", "", "YAML decisions file to apply before processing")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
