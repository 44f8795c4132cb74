// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats summarizes validation progress over a term collection.
package stats

import "github.com/pdiddy/thesaurus-engine/pkg/types"

// Aggregate counts records by validation state, effective action, and
// suggested category. Effective actions outside the five tracked buckets
// still count toward Total, Validated, and Pending.
func Aggregate(records []types.TermRecord) types.Statistics {
	s := types.Statistics{
		Total:      len(records),
		Categories: make(map[types.Category]int),
	}

	for _, r := range records {
		if r.Validated {
			s.Validated++
		}

		switch r.EffectiveAction() {
		case types.ActionKeep:
			s.Actions.Keep++
		case types.ActionMerge:
			s.Actions.Merge++
		case types.ActionEliminate:
			s.Actions.Eliminate++
		case types.ActionReview:
			s.Actions.Review++
		case types.ActionEvaluate:
			s.Actions.Evaluate++
		}

		if r.Category != "" {
			s.Categories[r.Category]++
		}
	}

	s.Pending = s.Total - s.Validated
	return s
}
