// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords extracts representative keywords from free text,
// scoring candidate terms against corpus-level document frequencies so
// that common scientific boilerplate ranks low.
package keywords

import (
	"math"
	"sort"

	"github.com/pdiddy/paper-scout/internal/retrieval"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// TFIDFExtractor scores each term of a text by term frequency times
// smoothed inverse document frequency.
type TFIDFExtractor struct {
	df map[string]int
	n  int
}

// NewTFIDFExtractor builds document frequencies over the corpus
// abstracts.
func NewTFIDFExtractor(docs []types.Document) *TFIDFExtractor {
	e := &TFIDFExtractor{
		df: make(map[string]int),
		n:  len(docs),
	}
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range retrieval.Tokenize(doc.Abstract) {
			if !seen[tok] {
				seen[tok] = true
				e.df[tok]++
			}
		}
	}
	return e
}

// Extract returns up to k keywords from text, best first. IDF is
// smoothed so terms absent from the corpus still score; ties break
// alphabetically for deterministic output.
func (e *TFIDFExtractor) Extract(text string, k int) []string {
	if k <= 0 {
		return nil
	}

	tf := make(map[string]int)
	for _, tok := range retrieval.Tokenize(text) {
		tf[tok]++
	}
	if len(tf) == 0 {
		return nil
	}

	type scored struct {
		term  string
		score float64
	}
	terms := make([]scored, 0, len(tf))
	for term, count := range tf {
		idf := math.Log(float64(e.n+1)/float64(e.df[term]+1)) + 1
		terms = append(terms, scored{term: term, score: float64(count) * idf})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].score != terms[j].score {
			return terms[i].score > terms[j].score
		}
		return terms[i].term < terms[j].term
	})

	if k < len(terms) {
		terms = terms[:k]
	}
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.term
	}
	return out
}
