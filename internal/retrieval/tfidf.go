// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieval ranks corpus documents against a query text. The
// default retriever is an in-memory TF-IDF index with cosine scoring;
// the engine only sees the ordered identifier list, so any retriever
// honoring that contract can stand in.
package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// tokenRegex splits on anything outside letters and digits.
var tokenRegex = regexp.MustCompile(`[^a-z0-9]+`)

// minTokenLen filters out words too short to carry relevance signal.
const minTokenLen = 3

// Tokenize lowercases text and splits it into normalized tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	for _, tok := range tokenRegex.Split(strings.ToLower(text), -1) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TFIDFIndex holds L2-normalized TF-IDF vectors for every corpus
// abstract. Built once per process invocation; read-only afterwards.
type TFIDFIndex struct {
	ids     []string
	vectors []map[string]float64
	df      map[string]int
	n       int
}

// NewTFIDFIndex builds the index over the corpus abstracts.
func NewTFIDFIndex(docs []types.Document) *TFIDFIndex {
	idx := &TFIDFIndex{
		ids:     make([]string, len(docs)),
		vectors: make([]map[string]float64, len(docs)),
		df:      make(map[string]int),
		n:       len(docs),
	}

	counts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		idx.ids[i] = doc.ID
		c := make(map[string]int)
		for _, tok := range Tokenize(doc.Abstract) {
			c[tok]++
		}
		counts[i] = c
		for term := range c {
			idx.df[term]++
		}
	}

	for i, c := range counts {
		idx.vectors[i] = idx.vectorize(c)
	}
	return idx
}

// DocFrequencies exposes the per-term document counts and corpus size
// for collaborators that score against the same statistics.
func (x *TFIDFIndex) DocFrequencies() (map[string]int, int) {
	return x.df, x.n
}

// vectorize turns raw term counts into an L2-normalized TF-IDF vector.
// Terms appearing in every document get zero weight and are dropped.
func (x *TFIDFIndex) vectorize(counts map[string]int) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	var norm float64
	for term, count := range counts {
		df := x.df[term]
		if df == 0 {
			continue
		}
		w := float64(count) * math.Log(float64(x.n)/float64(df))
		if w <= 0 {
			continue
		}
		vec[term] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for term := range vec {
			vec[term] /= norm
		}
	}
	return vec
}

// Predict returns up to k corpus document identifiers ranked by cosine
// similarity to text, best match first. Ties break on identifier so
// results are deterministic. An empty return means no document shares a
// weighted term with the query.
func (x *TFIDFIndex) Predict(text string, k int) []string {
	if k <= 0 || x.n == 0 {
		return nil
	}

	qcounts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		qcounts[tok]++
	}
	qvec := x.vectorize(qcounts)
	if len(qvec) == 0 {
		return nil
	}

	type scored struct {
		id    string
		score float64
	}
	var matches []scored
	for i, vec := range x.vectors {
		var dot float64
		for term, qw := range qvec {
			if dw, ok := vec[term]; ok {
				dot += qw * dw
			}
		}
		if dot > 0 {
			matches = append(matches, scored{id: x.ids[i], score: dot})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].id < matches[j].id
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.id
	}
	return ids
}
