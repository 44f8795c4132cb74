// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package thesaurus builds the VOSviewer thesaurus file from reviewed terms.
// The thesaurus only ever instructs removal or renaming: terms whose
// effective action is KEEP, REVIEW, or EVALUATE are left out.
package thesaurus

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// DefaultFilename is the name VOSviewer users expect for the exported file.
const DefaultFilename = "tesauro_validado.txt"

// Header is the fixed first row of the thesaurus.
var Header = []string{"label", "replace by"}

// Rows returns the header followed by one [term, replacement] row per
// record whose effective action is ELIMINATE or MERGE. The replacement is
// the merge target for MERGE and empty for ELIMINATE.
func Rows(records []types.TermRecord) [][]string {
	rows := [][]string{append([]string(nil), Header...)}
	for _, r := range records {
		switch r.EffectiveAction() {
		case types.ActionEliminate:
			rows = append(rows, []string{r.Term, ""})
		case types.ActionMerge:
			rows = append(rows, []string{r.Term, r.MergeTarget})
		}
	}
	return rows
}

// Export renders the thesaurus as tab-delimited text, one row per line,
// without a trailing newline.
func Export(records []types.TermRecord) string {
	rows := Rows(records)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "\t")
	}
	return strings.Join(lines, "\n")
}

// WriteTXT writes the tab-delimited thesaurus to path.
func WriteTXT(path string, records []types.TermRecord) error {
	if err := os.WriteFile(path, []byte(Export(records)), 0o644); err != nil {
		return fmt.Errorf("writing thesaurus: %w", err)
	}
	return nil
}

// Write writes the thesaurus to path in the given format.
func Write(path string, format types.ExportFormat, records []types.TermRecord) error {
	switch format {
	case types.ExportTXT, "":
		return WriteTXT(path, records)
	case types.ExportXLSX:
		return WriteXLSX(path, records)
	default:
		return fmt.Errorf("unsupported format %q: use txt or xlsx", format)
	}
}
