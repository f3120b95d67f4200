// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Extractor produces up to k keywords from a text, best first.
type Extractor interface {
	Extract(text string, k int) []string
}

// KeywordProfile maps a keyword to its accumulated rank weight across
// all library entries.
type KeywordProfile map[string]float64

// WeightedKeyword is one entry of a KeywordProfile's top-n view.
type WeightedKeyword struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	Weight  float64 `json:"weight" yaml:"weight"`
}

// AggregateKeywords extracts up to perDocK keywords from each library
// entry's abstract and merges them into one profile. The keyword at
// rank r contributes perDocK-r, floored at minRankWeight; a keyword
// surfaced by several entries accumulates additively, the same voting
// scheme document scoring uses. Entries with no extractable keywords
// contribute nothing.
func AggregateKeywords(entries []types.LibraryEntry, ex Extractor, perDocK int, log zerolog.Logger) KeywordProfile {
	profile := make(KeywordProfile)
	if ex == nil || perDocK <= 0 {
		return profile
	}
	for _, entry := range entries {
		kws := ex.Extract(entry.Abstract, perDocK)
		if len(kws) == 0 {
			log.Debug().Str("title", entry.Title).Msg("no keywords extracted for library entry")
			continue
		}
		for r, kw := range kws {
			w := float64(perDocK - r)
			if w < minRankWeight {
				w = minRankWeight
			}
			profile[kw] += w
		}
	}
	return profile
}

// Top returns the n highest-weighted keywords, weight descending, ties
// broken alphabetically for deterministic output.
func (p KeywordProfile) Top(n int) []WeightedKeyword {
	if n <= 0 || len(p) == 0 {
		return nil
	}
	out := make([]WeightedKeyword, 0, len(p))
	for kw, w := range p {
		out = append(out, WeightedKeyword{Keyword: kw, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Keyword < out[j].Keyword
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
