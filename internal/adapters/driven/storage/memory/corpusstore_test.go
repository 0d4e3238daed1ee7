package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusStore_Empty(t *testing.T) {
	store := NewCorpusStore('\n')

	assert.Equal(t, 0, store.Len())
	_, ok := store.Entry(0)
	assert.False(t, ok)
	assert.Empty(t, store.Snapshot().Entries())
}

func TestCorpusStore_AppendPreservesOrder(t *testing.T) {
	store := NewCorpusStore('\n')

	store.Append([]string{"apple", "banana"})
	store.Append([]string{"cherry"})
	store.Append(nil)

	require.Equal(t, 3, store.Len())
	for i, want := range []string{"apple", "banana", "cherry"} {
		got, ok := store.Entry(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, store.Snapshot().Entries())
}

func TestCorpusStore_EmptyEntries(t *testing.T) {
	store := NewCorpusStore('\n')
	store.Append([]string{"", "x", ""})

	assert.Equal(t, []string{"", "x", ""}, store.Snapshot().Entries())
}

func TestCorpusStore_LineContainingDelimiter(t *testing.T) {
	store := NewCorpusStore(',')
	store.Append([]string{"a,b", "c"})

	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"a", "b", "c"}, store.Snapshot().Entries())
}

func TestCorpusStore_MultiByteDelimiter(t *testing.T) {
	store := NewCorpusStore('→')
	store.Append([]string{"left", "right"})

	got, ok := store.Entry(1)
	require.True(t, ok)
	assert.Equal(t, "right", got)
	assert.Equal(t, []string{"left", "right"}, store.Snapshot().Entries())
}

func TestCorpusStore_EntryOutOfRange(t *testing.T) {
	store := NewCorpusStore('\n')
	store.Append([]string{"only"})

	_, ok := store.Entry(-1)
	assert.False(t, ok)
	_, ok = store.Entry(1)
	assert.False(t, ok)
}

func TestCorpusStore_SnapshotIsStableAcrossAppends(t *testing.T) {
	store := NewCorpusStore('\n')
	store.Append([]string{"one", "two"})

	snap := store.Snapshot()
	store.Append([]string{"three", "four", "five"})

	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, []string{"one", "two"}, snap.Entries())

	later := store.Snapshot()
	for i := 0; i < snap.Len(); i++ {
		a, _ := snap.Entry(i)
		b, _ := later.Entry(i)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, 5, later.Len())
}

func TestCorpusStore_Concurrency(t *testing.T) {
	store := NewCorpusStore('\n')

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			store.Append([]string{fmt.Sprintf("line-%d", i)})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			snap := store.Snapshot()
			entries := snap.Entries()
			for j, e := range entries {
				assert.Equal(t, fmt.Sprintf("line-%d", j), e)
			}
		}
	}()

	wg.Wait()
	assert.Equal(t, 200, store.Len())
}
