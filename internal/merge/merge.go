// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge suggests merge targets for a term by looking for other terms
// in the collection that share a significant word with it. Suggestions are
// an aid for the reviewer; the chosen merge target is always a human decision.
package merge

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// MaxCandidates caps the number of suggestions returned.
const MaxCandidates = 5

// minWordLen is exclusive: a shared word must be longer than this.
const minWordLen = 3

// FindCandidates returns up to MaxCandidates records, in collection order,
// whose term shares a word longer than three characters with term. Records
// whose term equals term case-insensitively are excluded.
func FindCandidates(term string, records []types.TermRecord) []types.TermRecord {
	lower := strings.ToLower(term)
	words := significantWords(lower)

	candidates := []types.TermRecord{}
	if len(words) == 0 {
		return candidates
	}

	for _, r := range records {
		other := strings.ToLower(r.Term)
		if other == lower {
			continue
		}
		if sharesWord(words, strings.Fields(other)) {
			candidates = append(candidates, r)
			if len(candidates) == MaxCandidates {
				break
			}
		}
	}
	return candidates
}

func significantWords(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		if utf8.RuneCountInString(w) > minWordLen {
			set[w] = struct{}{}
		}
	}
	return set
}

func sharesWord(words map[string]struct{}, other []string) bool {
	for _, w := range other {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}
