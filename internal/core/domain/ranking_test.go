package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankedList_At(t *testing.T) {
	list := RankedList{Entries: []RankedEntry{
		{Index: 4, Text: "cat", Score: 1},
		{Index: 1, Text: "caterpillar", Score: 0.75},
	}}

	assert.Equal(t, 2, list.Len())

	e, ok := list.At(1)
	assert.True(t, ok)
	assert.Equal(t, 1, e.Index)

	_, ok = list.At(2)
	assert.False(t, ok)
	_, ok = list.At(-1)
	assert.False(t, ok)
}

func TestRankedList_ZeroValue(t *testing.T) {
	var list RankedList

	assert.Equal(t, 0, list.Len())
	_, ok := list.At(0)
	assert.False(t, ok)
}
