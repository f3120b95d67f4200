// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import "github.com/rs/zerolog"

// Points maps a document title to its accumulated rank weight across
// all queries. Entries only ever grow.
type Points map[string]float64

// minRankWeight floors each candidate's contribution so that a reduced
// candidate bound can never produce a zero or negative weight.
const minRankWeight = 1

// Accumulate folds one candidate list into points. The candidate at
// rank r contributes k-r, floored at minRankWeight, keyed by the corpus
// title the identifier resolves to. Identifiers with no corpus document
// are a retriever contract violation; they are dropped, not fatal.
//
// Summation commutes, so the order in which candidate lists are folded
// in does not affect the final map.
func Accumulate(points Points, idx *CorpusIndex, candidates []string, k int, log zerolog.Logger) {
	for r, id := range candidates {
		doc, ok := idx.ByID(id)
		if !ok {
			log.Debug().Str("id", id).Msg("candidate identifier not in corpus, dropped")
			continue
		}
		w := float64(k - r)
		if w < minRankWeight {
			w = minRankWeight
		}
		points[doc.Title] += w
	}
}
