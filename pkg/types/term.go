// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the thesaurus-engine
// pipeline: classified term records, decision actions, and summary statistics.
package types

// Category is the semantic bucket the rule cascade assigns to a term.
type Category string

const (
	CategoryConceptual   Category = "CONCEPTUAL"
	CategoryEmpirical    Category = "EMPIRICAL"
	CategorySpecific     Category = "SPECIFIC"
	CategoryMetaTerm     Category = "META-TERM"
	CategoryEmpty        Category = "EMPTY"
	CategoryUndetermined Category = "UNDETERMINED"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryConceptual, CategoryEmpirical, CategorySpecific,
		CategoryMetaTerm, CategoryEmpty, CategoryUndetermined,
	}
}

// Action is either a suggestion produced by the classifier or a final
// decision recorded by a human.
type Action string

const (
	ActionKeep      Action = "KEEP"
	ActionMerge     Action = "MERGE"
	ActionEliminate Action = "ELIMINATE"
	ActionEvaluate  Action = "EVALUATE"
	ActionReview    Action = "REVIEW"
)

// IsFinal reports whether a is a valid human decision. EVALUATE and REVIEW
// are suggestions only and must be escalated to one of these.
func (a Action) IsFinal() bool {
	switch a {
	case ActionKeep, ActionMerge, ActionEliminate:
		return true
	}
	return false
}

// Confidence reflects how decisive the matching rule was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Classification is the outcome of running the rule cascade on one term.
type Classification struct {
	Category      Category   `json:"category" yaml:"category"`
	Action        Action     `json:"action" yaml:"action"`
	Confidence    Confidence `json:"confidence" yaml:"confidence"`
	Justification string     `json:"justification" yaml:"justification"`
}

// TermRecord is one row of an uploaded term list after classification.
//
// FinalAction is empty until a human records a decision, and MergeTarget is
// empty unless FinalAction is MERGE.
type TermRecord struct {
	// ID is 1-based and assigned by position among valid parsed rows.
	ID int `json:"id" yaml:"id"`

	// Term is the trimmed term text with its original case.
	Term string `json:"term" yaml:"term"`

	// Occurrences is the document or co-occurrence count.
	Occurrences int `json:"occurrences" yaml:"occurrences"`

	// Relevance is the VOSviewer relevance score.
	Relevance float64 `json:"relevance" yaml:"relevance"`

	Classification `yaml:",inline"`

	Validated   bool   `json:"validated" yaml:"validated"`
	FinalAction Action `json:"final_action,omitempty" yaml:"final_action,omitempty"`
	MergeTarget string `json:"merge_target,omitempty" yaml:"merge_target,omitempty"`
}

// EffectiveAction returns the human decision if one was recorded, otherwise
// the suggested action.
func (r TermRecord) EffectiveAction() Action {
	if r.FinalAction != "" {
		return r.FinalAction
	}
	return r.Action
}

// ActionCounts tallies records by effective action.
type ActionCounts struct {
	Keep      int `json:"keep" yaml:"keep"`
	Merge     int `json:"merge" yaml:"merge"`
	Eliminate int `json:"eliminate" yaml:"eliminate"`
	Review    int `json:"review" yaml:"review"`
	Evaluate  int `json:"evaluate" yaml:"evaluate"`
}

// Statistics summarizes validation progress over a record collection.
type Statistics struct {
	Total     int `json:"total" yaml:"total"`
	Validated int `json:"validated" yaml:"validated"`
	Pending   int `json:"pending" yaml:"pending"`

	Actions ActionCounts `json:"actions" yaml:"actions"`

	// Categories counts records by suggested category.
	Categories map[Category]int `json:"categories" yaml:"categories"`
}

// Progress returns the validated share of all records as a percentage.
func (s Statistics) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Validated) / float64(s.Total) * 100
}
