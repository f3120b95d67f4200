// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"sort"
	"strings"
)

// authorPunct is the fixed punctuation set stripped from author names.
// Every author comparison in the engine normalizes both sides with
// NormalizeAuthor, so the filter path and the counting path agree.
const authorPunct = ".,;:'\"()[]{}"

// NormalizeAuthor case-folds a name, strips the fixed punctuation set,
// and collapses whitespace.
func NormalizeAuthor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if !strings.ContainsRune(authorPunct, r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// AuthorProfile maps an author name to occurrence count across a
// recommendation set. Purely derived; it never feeds back into scoring.
type AuthorProfile map[string]int

// AuthorCount is one entry of an AuthorProfile's top-n view.
type AuthorCount struct {
	Author string `json:"author" yaml:"author"`
	Count  int    `json:"count" yaml:"count"`
}

// CountAuthors walks each recommended document's author list and counts
// occurrences. Names that normalize identically merge under the
// first-seen spelling.
func CountAuthors(recs *Recommendations) AuthorProfile {
	display := make(map[string]string)
	counts := make(AuthorProfile)
	for _, row := range recs.Rows {
		for _, a := range row.Authors {
			key := NormalizeAuthor(a)
			if key == "" {
				continue
			}
			name, ok := display[key]
			if !ok {
				name = strings.TrimSpace(a)
				display[key] = name
			}
			counts[name]++
		}
	}
	return counts
}

// Top returns the n most frequent authors, count descending, ties
// broken alphabetically for deterministic output.
func (p AuthorProfile) Top(n int) []AuthorCount {
	if n <= 0 || len(p) == 0 {
		return nil
	}
	out := make([]AuthorCount, 0, len(p))
	for a, c := range p {
		out = append(out, AuthorCount{Author: a, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Author < out[j].Author
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// FilterByAuthors keeps corpus documents where any normalized query
// name appears in the document's normalized author set. The embedding
// retriever is bypassed entirely; every kept row scores 1, so the
// stable Rank pass preserves corpus order. Duplicate titles collapse to
// the first occurrence, matching Collate.
func FilterByAuthors(idx *CorpusIndex, names []string) *Recommendations {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if key := NormalizeAuthor(n); key != "" {
			wanted[key] = true
		}
	}

	recs := &Recommendations{}
	if len(wanted) == 0 {
		return recs
	}
	seen := make(map[string]bool)
	for _, doc := range idx.Docs {
		if seen[doc.Title] {
			continue
		}
		for _, a := range doc.Authors {
			if wanted[NormalizeAuthor(a)] {
				seen[doc.Title] = true
				recs.Rows = append(recs.Rows, Recommendation{Document: doc, Score: 1})
				break
			}
		}
	}
	return recs
}
