// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest implements the recommendation aggregation engine: it
// turns per-document retrieval lists into a single deduplicated,
// scored, filtered, and truncated recommendation set, plus a keyword
// profile of the query set and an author summary of the output.
package suggest

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Retriever returns up to k candidate document identifiers for a text,
// best match first. An empty list is a valid no-match response, never
// an error for well-formed input. Whatever order the retriever returns
// is authoritative; the engine breaks no ties.
type Retriever interface {
	Predict(text string, k int) []string
}

// Options are the per-invocation pipeline knobs.
type Options struct {
	// MaxResults is the output bound N. It is applied as-is: zero or
	// negative yields an empty set.
	MaxResults int

	// Since and To bound the publication year, inclusive on both ends.
	// A nil bound imposes no constraint.
	Since *int
	To    *int
}

// Result bundles the outputs of a library run.
type Result struct {
	Recommendations *Recommendations
	Keywords        []WeightedKeyword
	Authors         []AuthorCount
}

// Suggester wires the corpus, the retriever, and the keyword extractor
// into the recommendation pipeline. Each invocation owns its own
// points map and recommendation set; a Suggester is safe to reuse
// across sequential queries.
type Suggester struct {
	idx        *CorpusIndex
	retriever  Retriever
	extractor  Extractor
	candidates int
	keywordCfg types.KeywordConfig
	log        zerolog.Logger
}

// defaultCandidatesPerQuery is the per-query retrieval bound when the
// config leaves it unset. It matches the maximum rank weight.
const defaultCandidatesPerQuery = 100

// NewSuggester builds a Suggester. extractor may be nil, in which case
// library runs skip the keyword profile.
func NewSuggester(idx *CorpusIndex, retriever Retriever, extractor Extractor, cfg types.SuggestConfig, kcfg types.KeywordConfig, log zerolog.Logger) *Suggester {
	candidates := cfg.CandidatesPerQuery
	if candidates <= 0 {
		candidates = defaultCandidatesPerQuery
	}
	if kcfg.PerDocument <= 0 {
		kcfg.PerDocument = 15
	}
	if kcfg.TopDisplay <= 0 {
		kcfg.TopDisplay = 10
	}
	return &Suggester{
		idx:        idx,
		retriever:  retriever,
		extractor:  extractor,
		candidates: candidates,
		keywordCfg: kcfg,
		log:        log,
	}
}

// SuggestForLibrary runs the multi-query pipeline: one retrieval per
// library entry, Borda-count accumulation on titles, then overlap
// removal, year filtering, and ranked truncation. The keyword profile
// and author summary are derived alongside.
func (s *Suggester) SuggestForLibrary(library []types.LibraryEntry, opts Options, prog Progress) (*Result, error) {
	if len(library) == 0 {
		return nil, fmt.Errorf("library is empty: nothing to recommend from")
	}
	if prog == nil {
		prog = NopProgress{}
	}

	s.log.Debug().Int("entries", len(library)).Msg("getting suggestions for library")

	prog.Step("Finding matches")
	points := make(Points)
	for _, entry := range library {
		ids := s.retriever.Predict(entry.Abstract, s.candidates)
		if len(ids) == 0 {
			s.log.Warn().Str("title", entry.Title).Msg("no candidates for library entry")
		}
		Accumulate(points, s.idx, ids, s.candidates, s.log)
		prog.Item()
	}

	prog.Step("Collating recommendations")
	recs := s.collate(points, len(library), library, opts)

	prog.Step("Profiling keywords")
	profile := AggregateKeywords(library, s.extractor, s.keywordCfg.PerDocument, s.log)

	return &Result{
		Recommendations: recs,
		Keywords:        profile.Top(s.keywordCfg.TopDisplay),
		Authors:         CountAuthors(recs).Top(s.keywordCfg.TopDisplay),
	}, nil
}

// SuggestForText runs the single-query pipeline for a free-text prompt.
// There is no library to overlap against, so only the year filter and
// ranked truncation apply.
func (s *Suggester) SuggestForText(text string, opts Options) (*Recommendations, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("query text is empty")
	}

	points := make(Points)
	ids := s.retriever.Predict(text, s.candidates)
	if len(ids) == 0 {
		s.log.Warn().Msg("no candidates for query text")
	}
	Accumulate(points, s.idx, ids, s.candidates, s.log)

	return s.collate(points, 1, nil, opts), nil
}

// SuggestForAuthors runs the retrieval-free variant: corpus documents
// matching any of the given author names, then the same filter and
// rank tail as every other mode.
func (s *Suggester) SuggestForAuthors(names []string, opts Options) (*Recommendations, error) {
	var nonEmpty []string
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			nonEmpty = append(nonEmpty, n)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, fmt.Errorf("no author names given")
	}

	recs := FilterByAuthors(s.idx, nonEmpty)
	recs.FilterYears(opts.Since, opts.To)
	recs.Rank(opts.MaxResults)
	if recs.Len() == 0 {
		s.log.Warn().Strs("authors", nonEmpty).Msg("no documents matched the given authors")
	}
	return recs, nil
}

// collate runs the shared pipeline tail: materialize, remove overlap,
// filter years, rank, truncate. Truncation is strictly last so a
// filtered-out row can never consume an output slot.
func (s *Suggester) collate(points Points, queries int, library []types.LibraryEntry, opts Options) *Recommendations {
	recs := Collate(points, s.idx, s.candidates, queries)
	recs.RemoveOverlap(library)
	recs.FilterYears(opts.Since, opts.To)
	recs.Rank(opts.MaxResults)
	if recs.Len() == 0 {
		s.log.Warn().Msg("no recommendations survived filtering")
	}
	return recs
}
