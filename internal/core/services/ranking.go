package services

import (
	"cmp"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/fzz/internal/core/domain"
	"github.com/custodia-labs/fzz/internal/core/ports/driving"
	"github.com/custodia-labs/fzz/internal/logger"
)

// Ensure Ranker implements the interface.
var _ driving.RankingService = (*Ranker)(nil)

const (
	// shortQueryLen is the query length (in characters) below which the
	// containment score is used instead of trigrams.
	shortQueryLen = 3

	// defaultChunkSize is the number of entries scored per parallel task.
	defaultChunkSize = 4096
)

// trigram is one padded three-character window.
type trigram [3]rune

// Ranker scores corpus entries against a query.
// It holds no state between calls and is safe for concurrent use.
type Ranker struct {
	chunkSize int
	workers   int
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithChunkSize sets how many entries each parallel scoring task handles.
func WithChunkSize(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// WithWorkers caps the number of scoring tasks running at once.
func WithWorkers(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

// NewRanker creates a ranking engine.
func NewRanker(opts ...RankerOption) *Ranker {
	r := &Ranker{
		chunkSize: defaultChunkSize,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank ranks every entry of the snapshot against the query.
func (r *Ranker) Rank(snapshot *domain.CorpusSnapshot, query string, opts domain.Options) domain.RankedList {
	return r.RankLines(snapshot.Entries(), query, opts)
}

// RankLines ranks lines against the query. The index of each line is its
// position in the slice.
func (r *Ranker) RankLines(lines []string, query string, opts domain.Options) domain.RankedList {
	list := domain.RankedList{
		Query: query,
		Total: len(lines),
	}

	if query == "" {
		list.Entries = make([]domain.RankedEntry, len(lines))
		for i, line := range lines {
			list.Entries[i] = domain.RankedEntry{Index: i, Text: line}
		}
		sortRanked(list.Entries)
		return list
	}

	if opts.CaseInsensitive {
		query = strings.ToLower(query)
	}
	q := newQueryScorer(query)

	scores := make([]float64, len(lines))
	r.scoreAll(lines, scores, q, opts.CaseInsensitive)

	for i, score := range scores {
		if score > opts.Threshold {
			list.Entries = append(list.Entries, domain.RankedEntry{Index: i, Text: lines[i], Score: score})
		}
	}
	sortRanked(list.Entries)

	logger.Debug("ranking: query=%q entries=%d kept=%d", query, len(lines), len(list.Entries))
	return list
}

// scoreAll fills scores[i] for every line. Large inputs are split into
// chunks scored in parallel; each task writes only its own slots.
func (r *Ranker) scoreAll(lines []string, scores []float64, q *queryScorer, fold bool) {
	if len(lines) <= r.chunkSize {
		scoreRange(lines, scores, q, fold)
		return
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for start := 0; start < len(lines); start += r.chunkSize {
		end := min(start+r.chunkSize, len(lines))
		g.Go(func() error {
			scoreRange(lines[start:end], scores[start:end], q, fold)
			return nil
		})
	}
	_ = g.Wait()
}

func scoreRange(lines []string, scores []float64, q *queryScorer, fold bool) {
	var buf []trigram
	for i, line := range lines {
		if fold {
			line = strings.ToLower(line)
		}
		scores[i], buf = q.score(line, buf)
	}
}

// sortRanked orders by score descending, then text length ascending, then
// original index ascending.
func sortRanked(entries []domain.RankedEntry) {
	slices.SortFunc(entries, func(a, b domain.RankedEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(utf8.RuneCountInString(a.Text), utf8.RuneCountInString(b.Text)); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
}

// queryScorer holds the per-query state shared by every scoring task.
// It is read-only after construction.
type queryScorer struct {
	runes    []rune
	trigrams []trigram
}

func newQueryScorer(query string) *queryScorer {
	q := &queryScorer{runes: []rune(query)}
	if len(q.runes) >= shortQueryLen {
		q.trigrams = appendTrigrams(nil, query)
	}
	return q
}

// score returns the similarity of entry to the query. buf is scratch
// space for the entry's trigrams and is returned for reuse.
func (q *queryScorer) score(entry string, buf []trigram) (float64, []trigram) {
	if len(q.runes) < shortQueryLen {
		return ContainmentScore(q.runes, entry), buf
	}
	buf = appendTrigrams(buf[:0], entry)
	return trigramScore(q.trigrams, buf), buf
}

// ContainmentScore scores a short query by how often its characters occur
// in entry: 1 - len(query)/matches. A ratio outside [0, 1], including no
// matches at all, scores 0.
func ContainmentScore(query []rune, entry string) float64 {
	matches := 0
	for _, qr := range query {
		for _, er := range entry {
			if qr == er {
				matches++
			}
		}
	}
	if matches == 0 {
		return 0
	}
	ratio := float64(len(query)) / float64(matches)
	if ratio < 0 || ratio > 1 {
		return 0
	}
	return 1 - ratio
}

// TrigramScore scores query against entry by the share of the query's
// padded trigrams that also occur in entry.
func TrigramScore(query, entry string) float64 {
	return trigramScore(appendTrigrams(nil, query), appendTrigrams(nil, entry))
}

func trigramScore(query, entry []trigram) float64 {
	if len(query) == 0 {
		return 0
	}
	shared := 0
	for _, qt := range query {
		if slices.Contains(entry, qt) {
			shared++
		}
	}
	// len(query) is the query length plus one.
	res := float64(shared) / float64(len(query))
	if res < 0 || res > 1 {
		return 0
	}
	return res
}

// appendTrigrams appends the windows of "  " + s + " ", which yields one
// trigram per character plus one.
func appendTrigrams(dst []trigram, s string) []trigram {
	a, b := ' ', ' '
	for _, c := range s {
		dst = append(dst, trigram{a, b, c})
		a, b = b, c
	}
	return append(dst, trigram{a, b, ' '})
}
