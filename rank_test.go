package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogFixture = []Record{
	{ID: "c1", Title: "Senior 3 Mathematics", Description: "algebra and geometry", Subject: "Maths"},
	{ID: "c2", Title: "Introduction to Biology", Description: "cells and organisms", Subject: "Science"},
	{ID: "c3", Title: "English Literature", Description: "poetry and prose", Subject: "English"},
	{ID: "c4", Title: "Chemistry Basics", Description: "atoms and bonds", Subject: "Chemistry"},
}

func TestRankOrdersByScore(t *testing.T) {
	results := Rank(catalogFixture, "maths", 10)
	require.NotEmpty(t, results, "should find the mathematics course")

	assert.Equal(t, "c1", results[0].Record.ID, "exact subject match should rank first")
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score,
			"results must be ordered by descending score")
	}
}

func TestRankExcludesZeroScores(t *testing.T) {
	results := Rank(catalogFixture, "chemistry", 10)
	require.NotEmpty(t, results, "should find the chemistry course")

	for _, result := range results {
		assert.Greater(t, result.Score, 0.0, "non-matching records must be dropped")
		assert.NotEqual(t, "c3", result.Record.ID, "the literature course should not match 'chemistry'")
	}
}

func TestRankDeterministicTieBreak(t *testing.T) {
	records := []Record{
		{ID: "b", Title: "Physics", Subject: "Science"},
		{ID: "a", Title: "Physics", Subject: "Science"},
		{ID: "c", Title: "Physics", Subject: "Science"},
	}

	results := Rank(records, "physics", 10)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Record.ID, "equal scores must fall back to ID order")
	assert.Equal(t, "b", results[1].Record.ID)
	assert.Equal(t, "c", results[2].Record.ID)
	assert.Equal(t, results[0].Score, results[1].Score, "identical records should score identically")
}

func TestRankMaxResults(t *testing.T) {
	records := []Record{
		{ID: "r1", Title: "Biology I", Subject: "Science"},
		{ID: "r2", Title: "Biology II", Subject: "Science"},
		{ID: "r3", Title: "Biology III", Subject: "Science"},
	}

	results := Rank(records, "biology", 2)
	assert.Len(t, results, 2, "maxResults should truncate the ranked list")
}

func TestRankGuards(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, Rank(nil, "maths", 5), "nil records should return nothing")
		assert.Empty(t, Rank(catalogFixture, "", 5), "empty query should return nothing")
		assert.Empty(t, Rank(catalogFixture, "   ", 5), "whitespace query should return nothing")
		assert.Empty(t, Rank(catalogFixture, "maths", 0), "zero max results should return nothing")
		assert.Empty(t, Rank(catalogFixture, "maths", -1), "negative max results should return nothing")
		assert.Empty(t, Rank(catalogFixture, "quasar", 5), "no matches should return nothing")
	})
}

func TestRankInto(t *testing.T) {
	buf := make([]Result, 2)

	results := RankInto(catalogFixture, "maths", buf)
	require.NotEmpty(t, results, "RankInto should return results")
	assert.LessOrEqual(t, len(results), len(buf), "results should fit into the buffer")
	assert.Equal(t, "c1", results[0].Record.ID, "buffer variant must rank identically to Rank")

	// The returned slice is a view of the caller's buffer.
	assert.Equal(t, buf[0], results[0], "results should alias the provided buffer")

	assert.Empty(t, RankInto(catalogFixture, "maths", nil), "empty buffer should return nothing")
	assert.Empty(t, RankInto(catalogFixture, "quasar", buf), "no matches should return nothing")
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Rank(catalogFixture, "maths", 10)
	}
}
