// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func indexDocs() []types.Document {
	return []types.Document{
		{ID: "d1", Abstract: "neural networks for image classification"},
		{ID: "d2", Abstract: "graph neural networks and message passing"},
		{ID: "d3", Abstract: "citation graph analysis with random walks"},
		{ID: "d4", Abstract: "protein folding structure prediction"},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Neural Networks!", []string{"neural", "networks"}},
		{"a an of", nil},
		{"TF-IDF scoring, 2019 edition", []string{"idf", "scoring", "2019", "edition"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), "input %q", tt.in)
	}
}

func TestPredictRanksByRelevance(t *testing.T) {
	idx := NewTFIDFIndex(indexDocs())

	ids := idx.Predict("graph neural networks", 10)

	require.NotEmpty(t, ids)
	// d2 contains all three query terms; it must outrank the partial
	// matches.
	assert.Equal(t, "d2", ids[0])
	assert.NotContains(t, ids, "d4")
}

func TestPredictTruncatesToK(t *testing.T) {
	idx := NewTFIDFIndex(indexDocs())

	ids := idx.Predict("neural graph citation", 2)
	assert.Len(t, ids, 2)
}

func TestPredictNoMatch(t *testing.T) {
	idx := NewTFIDFIndex(indexDocs())

	assert.Empty(t, idx.Predict("quantum entanglement", 10))
	assert.Empty(t, idx.Predict("", 10))
	assert.Empty(t, idx.Predict("neural", 0))
}

func TestPredictDeterministic(t *testing.T) {
	idx := NewTFIDFIndex(indexDocs())

	first := idx.Predict("neural networks graph", 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, idx.Predict("neural networks graph", 10))
	}
}

func TestPredictEmptyIndex(t *testing.T) {
	idx := NewTFIDFIndex(nil)
	assert.Empty(t, idx.Predict("anything", 10))
}

func TestDocFrequencies(t *testing.T) {
	idx := NewTFIDFIndex(indexDocs())

	df, n := idx.DocFrequencies()
	assert.Equal(t, 4, n)
	assert.Equal(t, 2, df["neural"])
	assert.Equal(t, 2, df["graph"])
	assert.Equal(t, 1, df["protein"])
}

func TestUbiquitousTermsCarryNoWeight(t *testing.T) {
	docs := []types.Document{
		{ID: "d1", Abstract: "common alpha"},
		{ID: "d2", Abstract: "common beta"},
	}
	idx := NewTFIDFIndex(docs)

	// "common" appears in every document: log(n/df) = 0, so a query of
	// only that term matches nothing.
	assert.Empty(t, idx.Predict("common", 10))

	ids := idx.Predict("alpha", 10)
	require.Len(t, ids, 1)
	assert.Equal(t, "d1", ids[0])
}
