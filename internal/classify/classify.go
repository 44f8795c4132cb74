// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify pre-classifies bibliometric terms into a suggested action
// by evaluating an ordered rule cascade over lexical membership, occurrence
// count, and relevance score. The first matching rule wins.
package classify

import (
	"fmt"
	"strings"

	"github.com/pdiddy/thesaurus-engine/internal/lexicon"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

const (
	highRelevance     = 1.5
	highFrequency     = 50
	noiseRelevance    = 0.3
	noiseFrequency    = 20
	moderateRelevance = 0.5
	moderateFrequency = 20
)

// Input is the term and its two numeric signals. Lower is the lowercased
// term used for lexical matching.
type Input struct {
	Term        string
	Lower       string
	Occurrences int
	Relevance   float64
}

// Rule is one step of the cascade.
type Rule struct {
	Name   string
	Match  func(in Input) bool
	Result func(in Input) types.Classification
}

var rules = []Rule{
	{
		Name:  "stopword",
		Match: func(in Input) bool { return lexicon.IsStopword(in.Lower) },
		Result: fixed(types.CategoryEmpty, types.ActionEliminate, types.ConfidenceHigh,
			"Generic methodological term with low semantic value"),
	},
	{
		Name: "protected-keyword",
		Match: func(in Input) bool {
			_, ok := lexicon.ProtectedMatch(in.Lower)
			return ok
		},
		Result: fixed(types.CategoryConceptual, types.ActionKeep, types.ConfidenceHigh,
			"Core Environmental Humanities concept"),
	},
	{
		Name:  "high-relevance",
		Match: func(in Input) bool { return in.Relevance > highRelevance },
		Result: func(in Input) types.Classification {
			return types.Classification{
				Category:      types.CategorySpecific,
				Action:        types.ActionKeep,
				Confidence:    types.ConfidenceHigh,
				Justification: fmt.Sprintf("High relevance score (%s) indicates corpus-specific term", formatRelevance(in.Relevance)),
			}
		},
	},
	{
		Name:  "high-frequency",
		Match: func(in Input) bool { return in.Occurrences > highFrequency },
		Result: func(in Input) types.Classification {
			return types.Classification{
				Category:      types.CategoryConceptual,
				Action:        types.ActionKeep,
				Confidence:    types.ConfidenceMedium,
				Justification: fmt.Sprintf("High frequency (%d occurrences) suggests central concept", in.Occurrences),
			}
		},
	},
	{
		Name: "noise",
		Match: func(in Input) bool {
			return in.Relevance < noiseRelevance && in.Occurrences < noiseFrequency
		},
		Result: func(in Input) types.Classification {
			return types.Classification{
				Category:      types.CategoryEmpty,
				Action:        types.ActionEliminate,
				Confidence:    types.ConfidenceMedium,
				Justification: fmt.Sprintf("Low relevance (%s) and frequency (%d) indicates noise", formatRelevance(in.Relevance), in.Occurrences),
			}
		},
	},
	{
		Name: "methodology",
		Match: func(in Input) bool {
			_, ok := lexicon.MethodologyMatch(in.Lower)
			return ok
		},
		Result: fixed(types.CategoryMetaTerm, types.ActionEvaluate, types.ConfidenceMedium,
			"Methodological term requiring expert evaluation"),
	},
	{
		Name: "moderate-empirical",
		Match: func(in Input) bool {
			return in.Relevance >= moderateRelevance && in.Occurrences >= moderateFrequency
		},
		Result: func(in Input) types.Classification {
			return types.Classification{
				Category:      types.CategoryEmpirical,
				Action:        types.ActionKeep,
				Confidence:    types.ConfidenceMedium,
				Justification: fmt.Sprintf("Moderate relevance (%s) and frequency (%d)", formatRelevance(in.Relevance), in.Occurrences),
			}
		},
	},
	{
		Name:  "default",
		Match: func(Input) bool { return true },
		Result: func(in Input) types.Classification {
			return types.Classification{
				Category:      types.CategoryUndetermined,
				Action:        types.ActionReview,
				Confidence:    types.ConfidenceLow,
				Justification: fmt.Sprintf("Ambiguous case: relevance=%s, occurrences=%d", formatRelevance(in.Relevance), in.Occurrences),
			}
		},
	},
}

func fixed(c types.Category, a types.Action, conf types.Confidence, why string) func(Input) types.Classification {
	return func(Input) types.Classification {
		return types.Classification{Category: c, Action: a, Confidence: conf, Justification: why}
	}
}

// Rules returns the cascade in evaluation order. The last rule always matches.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Classify returns the classification of term. It is pure and total.
func Classify(term string, occurrences int, relevance float64) types.Classification {
	c, _ := Explain(term, occurrences, relevance)
	return c
}

// Explain is Classify that also returns the name of the rule that fired.
func Explain(term string, occurrences int, relevance float64) (types.Classification, string) {
	in := Input{
		Term:        term,
		Lower:       strings.ToLower(term),
		Occurrences: occurrences,
		Relevance:   relevance,
	}
	for _, r := range rules {
		if r.Match(in) {
			return r.Result(in), r.Name
		}
	}
	// Unreachable: the default rule always matches.
	return types.Classification{}, ""
}
