package domain

import "sync"

// CorpusSnapshot is an immutable view of the corpus at one instant.
//
// The backing buffer is append-only, so a snapshot taken earlier remains a
// valid prefix of every later snapshot: entry i of an older snapshot is
// identical to entry i of any newer one.
type CorpusSnapshot struct {
	data   []byte
	starts []int
	delim  int

	once    sync.Once
	entries []string
}

// NewCorpusSnapshot wraps a buffer and the start offset of each entry.
// Every entry in data is terminated by a delimiter of delimLen bytes.
// The caller must never write to the given slices again.
func NewCorpusSnapshot(data []byte, starts []int, delimLen int) *CorpusSnapshot {
	return &CorpusSnapshot{
		data:   data,
		starts: starts,
		delim:  delimLen,
	}
}

// Len returns the number of entries in the snapshot.
func (s *CorpusSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.starts)
}

// Entry returns the text of the entry at the given original index.
func (s *CorpusSnapshot) Entry(index int) (string, bool) {
	if s == nil || index < 0 || index >= len(s.starts) {
		return "", false
	}
	return string(s.data[s.starts[index]:s.end(index)]), true
}

// Entries splits the snapshot into its ordered entries.
// The split is computed on first use and cached.
func (s *CorpusSnapshot) Entries() []string {
	if s == nil {
		return nil
	}
	s.once.Do(func() {
		s.entries = make([]string, len(s.starts))
		for i, start := range s.starts {
			s.entries[i] = string(s.data[start:s.end(i)])
		}
	})
	return s.entries
}

// end returns the exclusive end offset of entry i, excluding its delimiter.
func (s *CorpusSnapshot) end(i int) int {
	if i+1 < len(s.starts) {
		return s.starts[i+1] - s.delim
	}
	return len(s.data) - s.delim
}
