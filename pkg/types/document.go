// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is one corpus entry. The title is the natural key used for
// cross-query aggregation and overlap checks, so it must be unique
// within the corpus; documents are immutable once loaded.
type Document struct {
	// ID is the corpus-wide identifier returned by retrieval (e.g. a DOI
	// or an internal slug).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, used as the aggregation key.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, the text retrieval runs against.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the publication venue, if known.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// URL points at the paper's landing page, if known.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// LibraryEntry is one row of the user's bibliography. Read-only input
// to the recommendation pipeline; never persisted by it.
type LibraryEntry struct {
	Title    string   `json:"title" yaml:"title"`
	Abstract string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Authors  []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year     int      `json:"year,omitempty" yaml:"year,omitempty"`
}
