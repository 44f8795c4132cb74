// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/thesaurus-engine/internal/lexicon"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

func TestRuleOrder(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"stopword", "protected-keyword", "high-relevance", "high-frequency",
		"noise", "methodology", "moderate-empirical", "default",
	}, names)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		term        string
		occurrences int
		relevance   float64
		wantRule    string
		want        types.Classification
	}{
		{
			name: "stopword", term: "Study", occurrences: 500, relevance: 3.2,
			wantRule: "stopword",
			want: types.Classification{
				Category: types.CategoryEmpty, Action: types.ActionEliminate, Confidence: types.ConfidenceHigh,
				Justification: "Generic methodological term with low semantic value",
			},
		},
		{
			name: "protected keyword substring", term: "Multispecies Ethnography", occurrences: 3, relevance: 0.1,
			wantRule: "protected-keyword",
			want: types.Classification{
				Category: types.CategoryConceptual, Action: types.ActionKeep, Confidence: types.ConfidenceHigh,
				Justification: "Core Environmental Humanities concept",
			},
		},
		{
			name: "high relevance", term: "oil palm", occurrences: 4, relevance: 2.346,
			wantRule: "high-relevance",
			want: types.Classification{
				Category: types.CategorySpecific, Action: types.ActionKeep, Confidence: types.ConfidenceHigh,
				Justification: "High relevance score (2.35) indicates corpus-specific term",
			},
		},
		{
			name: "high frequency", term: "city", occurrences: 51, relevance: 0.1,
			wantRule: "high-frequency",
			want: types.Classification{
				Category: types.CategoryConceptual, Action: types.ActionKeep, Confidence: types.ConfidenceMedium,
				Justification: "High frequency (51 occurrences) suggests central concept",
			},
		},
		{
			name: "noise", term: "method", occurrences: 10, relevance: 0.1,
			wantRule: "noise",
			want: types.Classification{
				Category: types.CategoryEmpty, Action: types.ActionEliminate, Confidence: types.ConfidenceMedium,
				Justification: "Low relevance (0.10) and frequency (10) indicates noise",
			},
		},
		{
			name: "methodology", term: "qualitative research", occurrences: 25, relevance: 0.9,
			wantRule: "methodology",
			want: types.Classification{
				Category: types.CategoryMetaTerm, Action: types.ActionEvaluate, Confidence: types.ConfidenceMedium,
				Justification: "Methodological term requiring expert evaluation",
			},
		},
		{
			name: "moderate empirical", term: "river", occurrences: 20, relevance: 0.5,
			wantRule: "moderate-empirical",
			want: types.Classification{
				Category: types.CategoryEmpirical, Action: types.ActionKeep, Confidence: types.ConfidenceMedium,
				Justification: "Moderate relevance (0.50) and frequency (20)",
			},
		},
		{
			name: "default", term: "river", occurrences: 19, relevance: 0.45,
			wantRule: "default",
			want: types.Classification{
				Category: types.CategoryUndetermined, Action: types.ActionReview, Confidence: types.ConfidenceLow,
				Justification: "Ambiguous case: relevance=0.45, occurrences=19",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := Explain(tt.term, tt.occurrences, tt.relevance)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Classify(tt.term, tt.occurrences, tt.relevance))
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		occurrences int
		relevance   float64
		wantRule    string
	}{
		{"relevance 1.5 is not high", 30, 1.5, "moderate-empirical"},
		{"relevance just above 1.5 is high", 30, 1.50001, "high-relevance"},
		{"occurrences 50 is not high", 50, 0.4, "default"},
		{"occurrences 51 is high", 51, 0.4, "high-frequency"},
		{"relevance 0.3 is not noise", 5, 0.3, "default"},
		{"occurrences 20 is not noise", 20, 0.1, "default"},
		{"just under both noise thresholds", 19, 0.2999, "noise"},
		{"moderate lower bounds are inclusive", 20, 0.5, "moderate-empirical"},
		{"relevance under moderate", 20, 0.4999, "default"},
		{"occurrences under moderate", 19, 0.5, "default"},
		{"zero signals are noise", 0, 0, "noise"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rule := Explain("river", tt.occurrences, tt.relevance)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestStopwordsAlwaysEliminate(t *testing.T) {
	for _, w := range lexicon.Stopwords() {
		for _, term := range []string{w, strings.ToUpper(w), strings.ToUpper(w[:1]) + w[1:]} {
			got := Classify(term, 1000, 10)
			assert.Equal(t, types.ActionEliminate, got.Action, term)
			assert.Equal(t, types.CategoryEmpty, got.Category, term)
			assert.Equal(t, types.ConfidenceHigh, got.Confidence, term)
		}
	}
}

func TestProtectedKeywordsAlwaysKeep(t *testing.T) {
	for _, kw := range lexicon.ProtectedKeywords() {
		got := Classify("late "+strings.ToUpper(kw)+" studies", 1, 0.01)
		assert.Equal(t, types.ActionKeep, got.Action, kw)
		assert.Equal(t, types.CategoryConceptual, got.Category, kw)
		assert.Equal(t, types.ConfidenceHigh, got.Confidence, kw)
	}
}

func TestStopwordPrecedesProtectedKeyword(t *testing.T) {
	index := map[string]int{}
	for i, r := range Rules() {
		index[r.Name] = i
	}
	require.Less(t, index["stopword"], index["protected-keyword"])

	// Every exact stopword is decided by the first rule, whatever else matches.
	for _, w := range lexicon.Stopwords() {
		_, rule := Explain(w, 0, 0)
		assert.Equal(t, "stopword", rule, w)
	}
}

func TestClassifyIsTotal(t *testing.T) {
	f := gofakeit.New(42)
	valid := map[types.Action]bool{
		types.ActionKeep: true, types.ActionEliminate: true,
		types.ActionEvaluate: true, types.ActionReview: true,
	}

	for i := 0; i < 500; i++ {
		term := f.Phrase()
		occ := f.Number(0, 200)
		rel := f.Float64Range(0, 3)

		got := Classify(term, occ, rel)
		require.True(t, valid[got.Action], "term %q produced action %q", term, got.Action)
		assert.NotEqual(t, types.ActionMerge, got.Action)
		assert.NotEmpty(t, got.Category)
		assert.NotEmpty(t, got.Confidence)
		assert.NotEmpty(t, got.Justification)
		assert.Equal(t, got, Classify(term, occ, rel), "classification must be deterministic")
	}
}
