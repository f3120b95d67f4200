// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import "github.com/pdiddy/paper-scout/pkg/types"

// CorpusIndex is the engine's read-only view of the loaded corpus. It
// resolves candidate identifiers to documents and titles to their first
// corpus occurrence.
type CorpusIndex struct {
	Docs    []types.Document
	byID    map[string]int
	byTitle map[string]int
}

// NewCorpusIndex builds lookup tables over docs. When two documents
// share a title, the first occurrence wins for title lookups.
func NewCorpusIndex(docs []types.Document) *CorpusIndex {
	idx := &CorpusIndex{
		Docs:    docs,
		byID:    make(map[string]int, len(docs)),
		byTitle: make(map[string]int, len(docs)),
	}
	for i, d := range docs {
		if _, ok := idx.byID[d.ID]; !ok {
			idx.byID[d.ID] = i
		}
		if _, ok := idx.byTitle[d.Title]; !ok {
			idx.byTitle[d.Title] = i
		}
	}
	return idx
}

// Len returns the number of corpus documents.
func (x *CorpusIndex) Len() int { return len(x.Docs) }

// ByID returns the document with the given identifier.
func (x *CorpusIndex) ByID(id string) (types.Document, bool) {
	i, ok := x.byID[id]
	if !ok {
		return types.Document{}, false
	}
	return x.Docs[i], true
}

// ByTitle returns the first corpus document with the given title.
// Matching is exact and case-sensitive.
func (x *CorpusIndex) ByTitle(title string) (types.Document, bool) {
	i, ok := x.byTitle[title]
	if !ok {
		return types.Document{}, false
	}
	return x.Docs[i], true
}
