// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

func collection(terms ...string) []types.TermRecord {
	out := make([]types.TermRecord, len(terms))
	for i, term := range terms {
		out[i] = types.TermRecord{ID: i + 1, Term: term}
	}
	return out
}

func names(records []types.TermRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Term
	}
	return out
}

func TestFindCandidates(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		terms []string
		want  []string
	}{
		{
			name:  "shared significant word",
			term:  "urban ecology",
			terms: []string{"urban planning", "marine biology"},
			want:  []string{"urban planning"},
		},
		{
			name:  "excludes self case-insensitively",
			term:  "Urban Ecology",
			terms: []string{"urban ecology", "URBAN ECOLOGY", "political ecology"},
			want:  []string{"political ecology"},
		},
		{
			name:  "short shared words do not qualify",
			term:  "sea use",
			terms: []string{"sea level", "use value", "seascape"},
			want:  []string{},
		},
		{
			name:  "four letter words qualify",
			term:  "soil carbon",
			terms: []string{"soil erosion"},
			want:  []string{"soil erosion"},
		},
		{
			name:  "match is case-insensitive",
			term:  "Forest governance",
			terms: []string{"tropical FOREST", "water governance", "forestry"},
			want:  []string{"tropical FOREST", "water governance"},
		},
		{
			name:  "whole words only",
			term:  "river",
			terms: []string{"riverbank", "river basin"},
			want:  []string{"river basin"},
		},
		{
			name:  "empty query",
			term:  "   ",
			terms: []string{"river basin"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCandidates(tt.term, collection(tt.terms...))
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFindCandidatesLimitAndOrder(t *testing.T) {
	var terms []string
	for i := 0; i < 9; i++ {
		terms = append(terms, fmt.Sprintf("coastal zone %d", i))
	}

	got := FindCandidates("coastal wetlands", collection(terms...))
	require.Len(t, got, MaxCandidates)
	for i, r := range got {
		assert.Equal(t, i+1, r.ID)
	}
}
