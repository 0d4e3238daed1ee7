package memory

import (
	"bytes"
	"sync"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an append-only, in-memory implementation of driven.CorpusStore.
//
// Records live in one byte buffer, each followed by the delimiter, with a
// parallel slice of entry start offsets. Both only ever grow, so a snapshot
// is a pair of capped slices over the current prefix: later appends either
// write past the snapshot's length or reallocate, never touching bytes a
// snapshot can see.
type CorpusStore struct {
	mu     sync.RWMutex
	delim  []byte
	data   []byte
	starts []int
}

// NewCorpusStore creates an empty corpus split by delimiter.
func NewCorpusStore(delimiter rune) *CorpusStore {
	return &CorpusStore{
		delim: domain.Options{Delimiter: delimiter}.DelimiterBytes(),
	}
}

// Append adds lines to the end of the corpus, each followed by the delimiter.
// A line that itself contains the delimiter yields one entry per piece,
// exactly as splitting the joined buffer would.
func (s *CorpusStore) Append(lines []string) {
	if len(lines) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range lines {
		rest := []byte(line)
		for {
			s.starts = append(s.starts, len(s.data))
			i := bytes.Index(rest, s.delim)
			if i < 0 {
				s.data = append(s.data, rest...)
				s.data = append(s.data, s.delim...)
				break
			}
			s.data = append(s.data, rest[:i+len(s.delim)]...)
			rest = rest[i+len(s.delim):]
		}
	}
}

// Snapshot returns an immutable view of the current contents.
func (s *CorpusStore) Snapshot() *domain.CorpusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := s.data[:len(s.data):len(s.data)]
	starts := s.starts[:len(s.starts):len(s.starts)]
	return domain.NewCorpusSnapshot(data, starts, len(s.delim))
}

// Entry resolves an original index against the live corpus.
func (s *CorpusStore) Entry(index int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.starts) {
		return "", false
	}
	end := len(s.data) - len(s.delim)
	if index+1 < len(s.starts) {
		end = s.starts[index+1] - len(s.delim)
	}
	return string(s.data[s.starts[index]:end]), true
}

// Len returns the number of entries.
func (s *CorpusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.starts)
}
