package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssignsFirstSeenIds(t *testing.T) {
	v := Build([][]string{
		{"the", "house", "the"},
		{"a", "house"},
	})

	require.Equal(t, uint32(3), v.Size())
	assert.Equal(t, []string{"the", "house", "a"}, v.Words())

	id, ok := v.ID("a")
	assert.True(t, ok)
	assert.Equal(t, uint32(2), id)
	assert.Equal(t, "house", v.Word(1))

	_, ok = v.ID("missing")
	assert.False(t, ok)
}

func TestBuildIsDeterministic(t *testing.T) {
	sentences := [][]string{{"c", "b", "a"}, {"d", "a"}}
	assert.Equal(t, Build(sentences).Words(), Build(sentences).Words())
}

func TestEncodeKeepsOccurrences(t *testing.T) {
	v := Build([][]string{{"x", "y"}})

	assert.Equal(t, []uint32{1, 0, 1}, v.Encode([]string{"y", "x", "y"}))
	assert.Equal(t, []uint32{0}, v.Encode([]string{"x", "unknown"}))
}

func TestFromWords(t *testing.T) {
	v, ok := FromWords([]string{"hus", "ett"})
	assert.True(t, ok)
	assert.Equal(t, "ett", v.Word(1))

	_, ok = FromWords([]string{"hus", "hus"})
	assert.False(t, ok)
}
