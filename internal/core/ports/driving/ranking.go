package driving

import "github.com/custodia-labs/fzz/internal/core/domain"

// RankingService ranks corpus entries against a query.
// Implementations must be pure: identical inputs give identical output.
type RankingService interface {
	// Rank ranks every entry of the snapshot against the query.
	Rank(snapshot *domain.CorpusSnapshot, query string, opts domain.Options) domain.RankedList

	// RankLines ranks a plain slice of entries; index = slice position.
	RankLines(lines []string, query string, opts domain.Options) domain.RankedList
}
