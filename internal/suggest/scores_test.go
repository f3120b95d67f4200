// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func testCorpus() *CorpusIndex {
	return NewCorpusIndex([]types.Document{
		{ID: "d1", Title: "Paper A", Year: 2010, Authors: []string{"Ann Author"}},
		{ID: "d2", Title: "Paper B", Year: 2015, Authors: []string{"Bob Builder"}},
		{ID: "d3", Title: "Paper C", Year: 2019, Authors: []string{"Ann Author", "Carol Coder"}},
		{ID: "d4", Title: "Paper D", Year: 2021, Authors: []string{"Dan Dev"}},
	})
}

func TestAccumulateRankWeights(t *testing.T) {
	idx := testCorpus()
	points := make(Points)

	Accumulate(points, idx, []string{"d1", "d2", "d3"}, 100, zerolog.Nop())

	want := Points{"Paper A": 100, "Paper B": 99, "Paper C": 98}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v, want %v", points, want)
	}
}

func TestAccumulateSumsAcrossQueries(t *testing.T) {
	idx := testCorpus()
	points := make(Points)

	Accumulate(points, idx, []string{"d1", "d2"}, 100, zerolog.Nop())
	Accumulate(points, idx, []string{"d2", "d1"}, 100, zerolog.Nop())

	if points["Paper A"] != 100+99 {
		t.Errorf("Paper A = %v, want %v", points["Paper A"], 199)
	}
	if points["Paper B"] != 99+100 {
		t.Errorf("Paper B = %v, want %v", points["Paper B"], 199)
	}
}

func TestAccumulateDropsUnknownIdentifiers(t *testing.T) {
	idx := testCorpus()
	points := make(Points)

	Accumulate(points, idx, []string{"d1", "nope", "d2"}, 100, zerolog.Nop())

	if _, ok := points["nope"]; ok {
		t.Error("unknown identifier should not create an entry")
	}
	// Rank positions are the retriever's; the unknown entry still
	// consumed rank 1.
	if points["Paper B"] != 98 {
		t.Errorf("Paper B = %v, want 98", points["Paper B"])
	}
	if len(points) != 2 {
		t.Errorf("len(points) = %d, want 2", len(points))
	}
}

func TestAccumulateClampsWeightFloor(t *testing.T) {
	idx := testCorpus()
	points := make(Points)

	// More candidates than the bound k: weights past k-1 clamp to 1
	// instead of going to zero or negative.
	Accumulate(points, idx, []string{"d1", "d2", "d3", "d4"}, 2, zerolog.Nop())

	want := Points{"Paper A": 2, "Paper B": 1, "Paper C": 1, "Paper D": 1}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("points = %v, want %v", points, want)
	}
}

func TestAccumulateOrderIndependent(t *testing.T) {
	idx := testCorpus()
	lists := [][]string{
		{"d1", "d2", "d3"},
		{"d3", "d1"},
		{"d4"},
		{"d2", "d4", "d1"},
	}

	baseline := make(Points)
	for _, l := range lists {
		Accumulate(baseline, idx, l, 100, zerolog.Nop())
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([][]string, len(lists))
		copy(shuffled, lists)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		points := make(Points)
		for _, l := range shuffled {
			Accumulate(points, idx, l, 100, zerolog.Nop())
		}
		if !reflect.DeepEqual(points, baseline) {
			t.Fatalf("trial %d: points depend on query order: %v != %v", trial, points, baseline)
		}
	}
}

func TestCorpusIndexDuplicateTitleFirstWins(t *testing.T) {
	idx := NewCorpusIndex([]types.Document{
		{ID: "d1", Title: "Same Title", Year: 2010},
		{ID: "d2", Title: "Same Title", Year: 2020},
	})

	doc, ok := idx.ByTitle("Same Title")
	if !ok {
		t.Fatal("ByTitle should find the document")
	}
	if doc.ID != "d1" {
		t.Errorf("ByTitle ID = %q, want first occurrence d1", doc.ID)
	}
}
