// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon holds the fixed word lists consulted by the classifier:
// generic stopwords, protected Environmental Humanities keywords, and
// methodology terms. All entries are lowercase. The tables are never mutated;
// accessors return copies.
package lexicon

import "strings"

var stopwords = []string{
	"action", "activity", "addition", "analysis", "approach", "area",
	"article", "aspect", "author", "basis", "case", "concept",
	"condition", "contribution", "data", "decade", "effect", "example",
	"field", "focus", "framework", "idea", "impact", "issue", "kind",
	"level", "number", "paper", "part", "point", "practice", "problem",
	"process", "project", "range", "result", "section", "study", "term",
	"thing", "topic", "type", "use", "way", "year",
}

var protectedKeywords = []string{
	// Theoretical concepts.
	"anthropocene", "posthuman", "nonhuman", "multispecies",
	"more-than-human", "entanglement", "assemblage",

	// Approaches.
	"ecocriticism", "environmental humanities", "environmental history",
	"political ecology", "environmental justice",

	// Core concepts.
	"sustainability", "ecology", "biodiversity", "conservation",
	"climate change", "landscape", "heritage", "resilience",
	"ecosystem", "habitat", "species", "nature", "environment",
	"extinction", "restoration", "wilderness", "urban ecology",
}

var methodologyTerms = []string{
	"method", "methodology", "research", "literature", "review",
	"discussion", "conclusion", "introduction", "finding", "evidence",
}

var stopwordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		m[w] = struct{}{}
	}
	return m
}()

// Stopwords returns the stopword table.
func Stopwords() []string { return append([]string(nil), stopwords...) }

// ProtectedKeywords returns the protected keyword table.
func ProtectedKeywords() []string { return append([]string(nil), protectedKeywords...) }

// MethodologyTerms returns the methodology term table.
func MethodologyTerms() []string { return append([]string(nil), methodologyTerms...) }

// IsStopword reports whether lower is exactly a stopword. The caller
// lowercases the term.
func IsStopword(lower string) bool {
	_, ok := stopwordSet[lower]
	return ok
}

// ProtectedMatch returns the first protected keyword contained in lower.
// Matching is plain substring containment, so "nature" also matches
// "denatured".
func ProtectedMatch(lower string) (string, bool) {
	return firstContained(lower, protectedKeywords)
}

// MethodologyMatch returns the first methodology term contained in lower.
func MethodologyMatch(lower string) (string, bool) {
	return firstContained(lower, methodologyTerms)
}

func firstContained(s string, table []string) (string, bool) {
	for _, entry := range table {
		if strings.Contains(s, entry) {
			return entry, true
		}
	}
	return "", false
}
