package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fzz/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fzz/internal/core/domain"
)

func texts(list domain.RankedList) []string {
	out := make([]string, 0, list.Len())
	for _, e := range list.Entries {
		out = append(out, e.Text)
	}
	return out
}

func TestRanker_EmptyQueryKeepsEverything(t *testing.T) {
	r := NewRanker()

	list := r.RankLines([]string{"apple", "banana", "grape"}, "", domain.DefaultOptions())

	assert.Equal(t, []string{"apple", "grape", "banana"}, texts(list))
	assert.Equal(t, 3, list.Total)
	for _, e := range list.Entries {
		assert.Zero(t, e.Score)
	}
	assert.Equal(t, 0, list.Entries[0].Index)
	assert.Equal(t, 2, list.Entries[1].Index)
	assert.Equal(t, 1, list.Entries[2].Index)
}

func TestRanker_TrigramQuery(t *testing.T) {
	r := NewRanker()

	list := r.RankLines([]string{"cat", "caterpillar", "dog"}, "cat", domain.DefaultOptions())

	require.Equal(t, []string{"cat", "caterpillar"}, texts(list))
	assert.InDelta(t, 1.0, list.Entries[0].Score, 1e-9)
	assert.InDelta(t, 0.75, list.Entries[1].Score, 1e-9)
	assert.Equal(t, "cat", list.Query)
}

func TestRanker_ThresholdIsExclusive(t *testing.T) {
	r := NewRanker()
	opts := domain.DefaultOptions()
	opts.Threshold = 0.75

	list := r.RankLines([]string{"cat", "caterpillar"}, "cat", opts)

	assert.Equal(t, []string{"cat"}, texts(list))
}

func TestRanker_ShortQueryUsesContainment(t *testing.T) {
	r := NewRanker()

	list := r.RankLines([]string{"a", "banana", "xyz", "abab"}, "a", domain.DefaultOptions())

	// "a" alone scores 0; "abab" has 2 matches (0.5); "banana" has 3 (0.667).
	require.Equal(t, []string{"banana", "abab"}, texts(list))
	assert.InDelta(t, 2.0/3.0, list.Entries[0].Score, 1e-9)
	assert.InDelta(t, 0.5, list.Entries[1].Score, 1e-9)
}

func TestContainmentScore(t *testing.T) {
	tests := []struct {
		name  string
		query string
		entry string
		want  float64
	}{
		{"no match", "q", "apple", 0},
		{"single occurrence", "p", "ape", 0},
		{"two occurrences", "p", "apple", 0.5},
		{"two character query", "ab", "abab", 0.5},
		{"query longer than matches", "ab", "a", 0},
		{"empty entry", "ab", "", 0},
		{"unicode", "é", "éééé", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ContainmentScore([]rune(tt.query), tt.entry), 1e-9)
		})
	}
}

func TestTrigramScore(t *testing.T) {
	tests := []struct {
		name  string
		query string
		entry string
		want  float64
	}{
		{"identical", "cat", "cat", 1},
		{"prefix", "cat", "caterpillar", 0.75},
		{"disjoint", "cat", "dog", 0},
		{"suffix", "cat", "bobcat", 0.5},
		{"empty entry", "cat", "", 0},
		{"longer query", "abcd", "abc", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TrigramScore(tt.query, tt.entry), 1e-9)
		})
	}
}

func TestRanker_CaseInsensitiveFoldsBothSides(t *testing.T) {
	r := NewRanker()
	lines := []string{"CATALOG", "cat"}

	sensitive := r.RankLines(lines, "CAT", domain.DefaultOptions())
	assert.Equal(t, []string{"CATALOG"}, texts(sensitive))

	opts := domain.DefaultOptions()
	opts.CaseInsensitive = true
	folded := r.RankLines(lines, "CAT", opts)

	require.Equal(t, []string{"cat", "CATALOG"}, texts(folded))
	assert.InDelta(t, 1.0, folded.Entries[0].Score, 1e-9)
	assert.InDelta(t, 0.75, folded.Entries[1].Score, 1e-9)
}

func TestRanker_TieBreak(t *testing.T) {
	r := NewRanker()
	lines := []string{"catdog", "cat-x", "cat_x", "cats"}

	list := r.RankLines(lines, "cat", domain.DefaultOptions())

	// All share the same three leading trigrams and score 0.75.
	require.Equal(t, []string{"cats", "cat-x", "cat_x", "catdog"}, texts(list))
	for _, e := range list.Entries {
		assert.InDelta(t, 0.75, e.Score, 1e-9)
	}
}

func TestRanker_ParallelMatchesSequential(t *testing.T) {
	lines := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		lines = append(lines, fmt.Sprintf("item-%03d-%s", i, []string{"cat", "dog", "bird", "caterpillar"}[i%4]))
	}
	opts := domain.DefaultOptions()

	sequential := NewRanker(WithChunkSize(len(lines))).RankLines(lines, "cat", opts)
	parallel := NewRanker(WithChunkSize(7), WithWorkers(4)).RankLines(lines, "cat", opts)

	assert.Equal(t, sequential, parallel)
	assert.NotEmpty(t, parallel.Entries)
}

func TestRanker_Idempotent(t *testing.T) {
	r := NewRanker(WithChunkSize(3))
	lines := []string{"alpha", "alphabet", "beta", "alp", "gamma", "alpine"}

	first := r.RankLines(lines, "alp", domain.DefaultOptions())
	second := r.RankLines(lines, "alp", domain.DefaultOptions())

	assert.Equal(t, first, second)
}

func TestRanker_RankSnapshot(t *testing.T) {
	store := memory.NewCorpusStore('\n')
	store.Append([]string{"cat", "caterpillar", "dog"})
	snap := store.Snapshot()

	store.Append([]string{"cat"})

	list := NewRanker().Rank(snap, "cat", domain.DefaultOptions())

	assert.Equal(t, 3, list.Total)
	assert.Equal(t, []string{"cat", "caterpillar"}, texts(list))
	for _, e := range list.Entries {
		assert.Less(t, e.Index, snap.Len())
	}
}

func TestRanker_NilSnapshot(t *testing.T) {
	list := NewRanker().Rank(nil, "cat", domain.DefaultOptions())

	assert.Zero(t, list.Total)
	assert.Empty(t, list.Entries)
}
