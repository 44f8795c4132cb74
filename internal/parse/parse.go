// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse converts a tab-delimited term list exported by VOSviewer
// (id, term, occurrences, relevance score) into classified TermRecords.
// Malformed lines are skipped and reported as warnings; they never abort
// the parse.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/thesaurus-engine/internal/classify"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

const minFields = 4

// Warning describes a data line that was skipped.
type Warning struct {
	// Line is the 1-based line number in the source file, counting the header.
	Line int `json:"line" yaml:"line"`

	// Content is the raw line as read.
	Content string `json:"content" yaml:"content"`

	// Reason explains why the line was skipped.
	Reason string `json:"reason" yaml:"reason"`
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Parse classifies every well-formed data line of raw. The first line is a
// header and is discarded without inspection. Record ids are dense over the
// valid rows, starting at 1, in source order.
//
// Occurrences must be a non-negative base-10 integer and the relevance
// score a finite decimal number, each with surrounding whitespace ignored.
// Rows with anything else in those fields, such as "94.0" or "12abc", are
// skipped with a warning rather than truncated to a number.
func Parse(raw string) ([]types.TermRecord, []Warning) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= 1 {
		return []types.TermRecord{}, nil
	}

	records := make([]types.TermRecord, 0, len(lines)-1)
	var warnings []Warning

	for i, line := range lines[1:] {
		rec, err := parseLine(line)
		if err != nil {
			warnings = append(warnings, Warning{Line: i + 2, Content: line, Reason: err.Error()})
			continue
		}
		rec.ID = len(records) + 1
		records = append(records, rec)
	}

	return records, warnings
}

func parseLine(line string) (types.TermRecord, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < minFields {
		return types.TermRecord{}, fmt.Errorf("expected %d tab-separated fields, got %d", minFields, len(parts))
	}

	term := strings.TrimSpace(parts[1])

	occurrences, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || occurrences < 0 {
		return types.TermRecord{}, fmt.Errorf("invalid occurrences %q", parts[2])
	}

	relevance, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || math.IsNaN(relevance) || math.IsInf(relevance, 0) {
		return types.TermRecord{}, fmt.Errorf("invalid relevance score %q", parts[3])
	}

	return types.TermRecord{
		Term:           term,
		Occurrences:    occurrences,
		Relevance:      relevance,
		Classification: classify.Classify(term, occurrences, relevance),
	}, nil
}
