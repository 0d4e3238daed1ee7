package domain

// RankedEntry is one corpus entry that survived ranking.
type RankedEntry struct {
	// Index is the original index of the entry in the corpus.
	Index int `json:"index"`

	// Text is the entry's original, unfolded text.
	Text string `json:"text"`

	// Score is the similarity to the query, in [0, 1].
	Score float64 `json:"score"`
}

// RankedList is the complete output of one ranking job.
// A new list always replaces the previous one wholesale.
type RankedList struct {
	// Generation identifies the job that produced the list.
	Generation uint64

	// Query is the query the list was ranked for.
	Query string

	// Total is the corpus size the job saw.
	Total int

	// Entries holds the surviving entries, best first.
	Entries []RankedEntry
}

// Len returns the number of ranked entries.
func (l RankedList) Len() int {
	return len(l.Entries)
}

// At returns the entry at position i of the list.
func (l RankedList) At(i int) (RankedEntry, bool) {
	if i < 0 || i >= len(l.Entries) {
		return RankedEntry{}, false
	}
	return l.Entries[i], true
}
