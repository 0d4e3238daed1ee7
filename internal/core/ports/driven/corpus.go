package driven

import "github.com/custodia-labs/fzz/internal/core/domain"

// CorpusStore holds every record ingested so far.
//
// Entries are never removed or reordered, so an original index resolves to
// the same text for the lifetime of the store. Implementations must allow
// Snapshot and Entry concurrently with Append.
type CorpusStore interface {
	// Append adds lines to the end of the corpus.
	Append(lines []string)

	// Snapshot returns an immutable view of the current contents.
	Snapshot() *domain.CorpusSnapshot

	// Entry resolves an original index against the live corpus.
	Entry(index int) (string, bool)

	// Len returns the number of entries.
	Len() int
}
