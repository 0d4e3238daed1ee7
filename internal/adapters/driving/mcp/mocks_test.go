package mcp

import (
	"github.com/custodia-labs/fzz/internal/core/domain"
)

// mockRankingService is a mock implementation of driving.RankingService.
type mockRankingService struct {
	list      domain.RankedList
	lastLines []string
	lastQuery string
	lastOpts  domain.Options
}

func (m *mockRankingService) Rank(
	snapshot *domain.CorpusSnapshot,
	query string,
	opts domain.Options,
) domain.RankedList {
	return m.RankLines(snapshot.Entries(), query, opts)
}

func (m *mockRankingService) RankLines(lines []string, query string, opts domain.Options) domain.RankedList {
	m.lastLines = lines
	m.lastQuery = query
	m.lastOpts = opts
	return m.list
}

// mockOptionsService is a mock implementation of driving.OptionsService.
type mockOptionsService struct {
	opts domain.Options
	err  error
}

func (m *mockOptionsService) Get() (domain.Options, error) {
	return m.opts, m.err
}

func (m *mockOptionsService) Save(opts domain.Options) error {
	if m.err != nil {
		return m.err
	}
	m.opts = opts
	return nil
}

func (m *mockOptionsService) Set(_, _ string) error {
	return m.err
}

func (m *mockOptionsService) Defaults() domain.Options {
	return domain.DefaultOptions()
}
