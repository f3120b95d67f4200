// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"testing"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ann Author", "ann author"},
		{"J. Smith", "j smith"},
		{"  Smith,   J.  ", "smith j"},
		{"O'Brien, Pat", "obrien pat"},
		{"(Ed.) K. Jones", "ed k jones"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAuthor(tt.in); got != tt.want {
			t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountAuthorsMergesSpellings(t *testing.T) {
	recs := &Recommendations{Rows: []Recommendation{
		{Document: types.Document{Title: "a", Authors: []string{"J. Smith", "Ann Author"}}},
		{Document: types.Document{Title: "b", Authors: []string{"j smith"}}},
		{Document: types.Document{Title: "c", Authors: []string{"J. Smith"}}},
	}}

	counts := CountAuthors(recs)

	// First-seen spelling is the display name.
	if counts["J. Smith"] != 3 {
		t.Errorf("J. Smith = %d, want 3", counts["J. Smith"])
	}
	if _, ok := counts["j smith"]; ok {
		t.Error("variant spelling should merge under the first-seen form")
	}
	if counts["Ann Author"] != 1 {
		t.Errorf("Ann Author = %d, want 1", counts["Ann Author"])
	}
}

func TestCountAuthorsSkipsEmptyNames(t *testing.T) {
	recs := &Recommendations{Rows: []Recommendation{
		{Document: types.Document{Title: "a", Authors: []string{"", "  ", "Real Name"}}},
	}}
	counts := CountAuthors(recs)
	if len(counts) != 1 {
		t.Errorf("len(counts) = %d, want 1", len(counts))
	}
}

func TestAuthorProfileTop(t *testing.T) {
	profile := AuthorProfile{"Zed": 4, "Abe": 4, "Cal": 2}

	top := profile.Top(2)

	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].Author != "Abe" || top[1].Author != "Zed" {
		t.Errorf("tie order = [%s, %s], want [Abe, Zed]", top[0].Author, top[1].Author)
	}
}

func TestFilterByAuthorsMatchesNormalized(t *testing.T) {
	idx := testCorpus()

	recs := FilterByAuthors(idx, []string{"ann author"})

	if recs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", recs.Len())
	}
	// Corpus order, score 1 on every row.
	if recs.Rows[0].ID != "d1" || recs.Rows[1].ID != "d3" {
		t.Errorf("ids = [%s, %s], want [d1, d3]", recs.Rows[0].ID, recs.Rows[1].ID)
	}
	for _, row := range recs.Rows {
		if row.Score != 1 {
			t.Errorf("%s score = %v, want 1", row.ID, row.Score)
		}
	}
}

func TestFilterByAuthorsPunctuationInsensitive(t *testing.T) {
	idx := NewCorpusIndex([]types.Document{
		{ID: "d1", Title: "t1", Authors: []string{"Smith, J."}},
	})

	recs := FilterByAuthors(idx, []string{"smith j"})

	if recs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", recs.Len())
	}
}

func TestFilterByAuthorsNoMatch(t *testing.T) {
	recs := FilterByAuthors(testCorpus(), []string{"Nobody Here"})
	if recs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", recs.Len())
	}
}

func TestFilterByAuthorsDeduplicatesTitles(t *testing.T) {
	idx := NewCorpusIndex([]types.Document{
		{ID: "d1", Title: "Same Title", Authors: []string{"Ann Author"}},
		{ID: "d2", Title: "Same Title", Authors: []string{"Ann Author"}},
	})

	recs := FilterByAuthors(idx, []string{"Ann Author"})

	if recs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", recs.Len())
	}
	if recs.Rows[0].ID != "d1" {
		t.Errorf("ID = %s, want d1", recs.Rows[0].ID)
	}
}
