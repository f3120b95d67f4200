// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// mapRetriever returns a fixed candidate list per query text.
type mapRetriever map[string][]string

func (m mapRetriever) Predict(text string, k int) []string {
	ids := m[text]
	if k < len(ids) {
		ids = ids[:k]
	}
	return ids
}

func newTestSuggester(idx *CorpusIndex, r Retriever) *Suggester {
	return NewSuggester(idx, r, nil,
		types.SuggestConfig{CandidatesPerQuery: 100},
		types.KeywordConfig{},
		zerolog.Nop())
}

func TestSuggestForLibrary(t *testing.T) {
	idx := testCorpus()
	retriever := mapRetriever{
		"about a": {"d1", "d2"},
		"about c": {"d3", "d1"},
	}
	s := newTestSuggester(idx, retriever)

	library := []types.LibraryEntry{
		{Title: "Entry One", Abstract: "about a"},
		{Title: "Entry Two", Abstract: "about c"},
	}
	res, err := s.SuggestForLibrary(library, Options{MaxResults: 10}, nil)
	if err != nil {
		t.Fatalf("SuggestForLibrary: %v", err)
	}

	recs := res.Recommendations
	if recs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", recs.Len())
	}
	// d1 hit twice (ranks 0 and 1): (100+99)/200. d2 and d3 each hit
	// once at ranks 1 and 0: 99/200 and 100/200. d1 wins, then d3.
	if recs.Rows[0].ID != "d1" {
		t.Errorf("top ID = %s, want d1", recs.Rows[0].ID)
	}
	if recs.Rows[1].ID != "d3" {
		t.Errorf("second ID = %s, want d3", recs.Rows[1].ID)
	}
	if recs.Rows[0].Score != 199.0/200.0 {
		t.Errorf("top score = %v, want %v", recs.Rows[0].Score, 199.0/200.0)
	}
}

func TestSuggestForLibraryEmptyLibrary(t *testing.T) {
	s := newTestSuggester(testCorpus(), mapRetriever{})
	if _, err := s.SuggestForLibrary(nil, Options{MaxResults: 10}, nil); err == nil {
		t.Fatal("empty library must be an error")
	}
}

func TestSuggestForLibraryEmptyRetrieval(t *testing.T) {
	// A retriever with no matches over a well-formed library is not an
	// error: the result is an empty set.
	idx := testCorpus()
	s := newTestSuggester(idx, mapRetriever{})

	library := []types.LibraryEntry{
		{Title: "e1", Abstract: "x"},
		{Title: "e2", Abstract: "y"},
		{Title: "e3", Abstract: "z"},
	}
	res, err := s.SuggestForLibrary(library, Options{MaxResults: 10}, nil)
	if err != nil {
		t.Fatalf("SuggestForLibrary: %v", err)
	}
	if res.Recommendations.Len() != 0 {
		t.Errorf("Len() = %d, want 0", res.Recommendations.Len())
	}
}

func TestSuggestForLibraryExcludesOverlap(t *testing.T) {
	idx := testCorpus()
	retriever := mapRetriever{"q": {"d1", "d2"}}
	s := newTestSuggester(idx, retriever)

	// The library itself contains Paper A; it must never come back.
	library := []types.LibraryEntry{{Title: "Paper A", Abstract: "q"}}
	res, err := s.SuggestForLibrary(library, Options{MaxResults: 10}, nil)
	if err != nil {
		t.Fatalf("SuggestForLibrary: %v", err)
	}
	for _, row := range res.Recommendations.Rows {
		if row.Title == "Paper A" {
			t.Error("library title leaked into the recommendations")
		}
	}
	if res.Recommendations.Len() != 1 {
		t.Errorf("Len() = %d, want 1", res.Recommendations.Len())
	}
}

func TestSuggestForLibraryTruncatesLast(t *testing.T) {
	// Year filtering removes the top-scored candidate; truncation to 1
	// must then admit the next survivor rather than return empty.
	idx := testCorpus()
	retriever := mapRetriever{"q": {"d4", "d2"}} // d4 is 2021, d2 is 2015
	s := newTestSuggester(idx, retriever)

	library := []types.LibraryEntry{{Title: "e", Abstract: "q"}}
	res, err := s.SuggestForLibrary(library, Options{MaxResults: 1, To: intptr(2016)}, nil)
	if err != nil {
		t.Fatalf("SuggestForLibrary: %v", err)
	}
	if res.Recommendations.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", res.Recommendations.Len())
	}
	if res.Recommendations.Rows[0].ID != "d2" {
		t.Errorf("ID = %s, want d2", res.Recommendations.Rows[0].ID)
	}
}

func TestSuggestForLibraryKeywordsAndAuthors(t *testing.T) {
	idx := testCorpus()
	retriever := mapRetriever{"alpha beta": {"d1", "d3"}}
	s := NewSuggester(idx, retriever, wordExtractor{},
		types.SuggestConfig{CandidatesPerQuery: 100},
		types.KeywordConfig{PerDocument: 5, TopDisplay: 3},
		zerolog.Nop())

	library := []types.LibraryEntry{{Title: "e", Abstract: "alpha beta"}}
	res, err := s.SuggestForLibrary(library, Options{MaxResults: 10}, nil)
	if err != nil {
		t.Fatalf("SuggestForLibrary: %v", err)
	}

	if len(res.Keywords) != 2 || res.Keywords[0].Keyword != "alpha" {
		t.Errorf("keywords = %v, want alpha first of two", res.Keywords)
	}
	// Ann Author is on both d1 and d3.
	if len(res.Authors) == 0 || res.Authors[0].Author != "Ann Author" || res.Authors[0].Count != 2 {
		t.Errorf("authors = %v, want Ann Author with count 2 first", res.Authors)
	}
}

func TestSuggestForText(t *testing.T) {
	idx := testCorpus()
	retriever := mapRetriever{"neural ranking": {"d2", "d3"}}
	s := newTestSuggester(idx, retriever)

	recs, err := s.SuggestForText("neural ranking", Options{MaxResults: 10})
	if err != nil {
		t.Fatalf("SuggestForText: %v", err)
	}
	if recs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", recs.Len())
	}
	if recs.Rows[0].ID != "d2" {
		t.Errorf("top ID = %s, want d2", recs.Rows[0].ID)
	}
	if recs.Rows[0].Score != 1.0 {
		t.Errorf("top score = %v, want 1.0", recs.Rows[0].Score)
	}
}

func TestSuggestForTextEmpty(t *testing.T) {
	s := newTestSuggester(testCorpus(), mapRetriever{})
	if _, err := s.SuggestForText("   ", Options{MaxResults: 10}); err == nil {
		t.Fatal("blank query text must be an error")
	}
}

func TestSuggestForAuthors(t *testing.T) {
	s := newTestSuggester(testCorpus(), mapRetriever{})

	recs, err := s.SuggestForAuthors([]string{"Ann Author"}, Options{MaxResults: 10})
	if err != nil {
		t.Fatalf("SuggestForAuthors: %v", err)
	}
	if recs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", recs.Len())
	}
	// All rows score 1; the stable sort keeps corpus order.
	if recs.Rows[0].ID != "d1" || recs.Rows[1].ID != "d3" {
		t.Errorf("ids = [%s, %s], want [d1, d3]", recs.Rows[0].ID, recs.Rows[1].ID)
	}
}

func TestSuggestForAuthorsYearFilter(t *testing.T) {
	s := newTestSuggester(testCorpus(), mapRetriever{})

	recs, err := s.SuggestForAuthors([]string{"Ann Author"}, Options{MaxResults: 10, Since: intptr(2015)})
	if err != nil {
		t.Fatalf("SuggestForAuthors: %v", err)
	}
	if recs.Len() != 1 || recs.Rows[0].ID != "d3" {
		t.Errorf("rows = %v, want only d3", recs.Rows)
	}
}

func TestSuggestForAuthorsNoNames(t *testing.T) {
	s := newTestSuggester(testCorpus(), mapRetriever{})
	if _, err := s.SuggestForAuthors([]string{"", "  "}, Options{MaxResults: 10}); err == nil {
		t.Fatal("blank author names must be an error")
	}
}

func TestSuggestMaxResultsZero(t *testing.T) {
	idx := testCorpus()
	retriever := mapRetriever{"q": {"d1"}}
	s := newTestSuggester(idx, retriever)

	recs, err := s.SuggestForText("q", Options{MaxResults: 0})
	if err != nil {
		t.Fatalf("SuggestForText: %v", err)
	}
	if recs.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for MaxResults 0", recs.Len())
	}
}
