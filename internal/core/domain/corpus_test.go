package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusSnapshot_Entries(t *testing.T) {
	data := []byte("apple\nbanana\ngrape\n")
	snap := NewCorpusSnapshot(data, []int{0, 6, 13}, 1)

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, []string{"apple", "banana", "grape"}, snap.Entries())
}

func TestCorpusSnapshot_EmptyEntries(t *testing.T) {
	data := []byte("a\n\nb\n")
	snap := NewCorpusSnapshot(data, []int{0, 2, 3}, 1)

	assert.Equal(t, []string{"a", "", "b"}, snap.Entries())
}

func TestCorpusSnapshot_MultiByteDelimiter(t *testing.T) {
	data := []byte("x§yy§")
	snap := NewCorpusSnapshot(data, []int{0, 3}, 2)

	assert.Equal(t, []string{"x", "yy"}, snap.Entries())
}

func TestCorpusSnapshot_Entry(t *testing.T) {
	snap := NewCorpusSnapshot([]byte("cat\ndog\n"), []int{0, 4}, 1)

	text, ok := snap.Entry(1)
	assert.True(t, ok)
	assert.Equal(t, "dog", text)

	_, ok = snap.Entry(2)
	assert.False(t, ok)

	_, ok = snap.Entry(-1)
	assert.False(t, ok)
}

func TestCorpusSnapshot_Nil(t *testing.T) {
	var snap *CorpusSnapshot

	assert.Equal(t, 0, snap.Len())
	assert.Nil(t, snap.Entries())
	_, ok := snap.Entry(0)
	assert.False(t, ok)
}

func TestCorpusSnapshot_EntriesCached(t *testing.T) {
	snap := NewCorpusSnapshot([]byte("a\nb\n"), []int{0, 2}, 1)

	first := snap.Entries()
	second := snap.Entries()

	assert.Same(t, &first[0], &second[0])
}
