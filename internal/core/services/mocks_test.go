package services

import (
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// spawnCall records one Spawn on mockDispatcher.
type spawnCall struct {
	size  int
	query string
}

// mockDispatcher implements driving.JobDispatcher without running jobs.
type mockDispatcher struct {
	calls []spawnCall
	gen   uint64
}

func (m *mockDispatcher) Spawn(snapshot *domain.CorpusSnapshot, query string) uint64 {
	m.gen++
	m.calls = append(m.calls, spawnCall{size: snapshot.Len(), query: query})
	return m.gen
}

func (m *mockDispatcher) lastQuery() string {
	if len(m.calls) == 0 {
		return ""
	}
	return m.calls[len(m.calls)-1].query
}

// rankedList builds a RankedList of the given generation over texts.
func rankedList(gen uint64, texts ...string) domain.RankedList {
	list := domain.RankedList{Generation: gen, Total: len(texts)}
	for i, text := range texts {
		list.Entries = append(list.Entries, domain.RankedEntry{Index: i, Text: text})
	}
	return list
}

func key(kind domain.KeyKind) domain.KeyInput {
	return domain.KeyInput{Key: domain.Key{Kind: kind}}
}

func char(r rune) domain.KeyInput {
	return domain.KeyInput{Key: domain.CharKey(r)}
}
