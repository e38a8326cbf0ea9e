package collection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPreservesKeysAndSource(t *testing.T) {
	c := New[int](Primitive(KindInteger))
	require.NoError(t, c.Set(StringKey("a"), 1))
	require.NoError(t, c.Add(2))
	require.NoError(t, c.Set(StringKey("b"), 3))

	even := c.Filter(func(v int, _ Key) bool { return v%2 == 0 })

	assert.Equal(t, 1, even.Len())
	v, ok := even.Get(IndexKey(0))
	assert.True(t, ok, "filtered entries keep their original keys")
	assert.Equal(t, 2, v)
	assert.Equal(t, c.Descriptor(), even.Descriptor())
	assert.Equal(t, 3, c.Len(), "filter must not mutate the source")
}

func TestFilterResultStaysConsistent(t *testing.T) {
	c := New[string](Primitive(KindString))
	require.NoError(t, c.Set(IndexKey(4), "keep"))

	out := c.Filter(func(string, Key) bool { return true })

	// The copy's auto-index counter sits past the copied indexes.
	require.NoError(t, out.Add("next"))
	_, ok := out.Get(IndexKey(5))
	assert.True(t, ok)
}

func TestSortInPlace(t *testing.T) {
	c, err := From(Primitive(KindInteger), 3, 1, 2)
	require.NoError(t, err)

	got := c.Sort(func(a, b int) bool { return a < b })

	assert.Same(t, c, got, "sort returns the same instance")
	assert.Equal(t, []int{1, 2, 3}, c.Values())

	// Keys travel with their values.
	v, ok := c.Get(IndexKey(0))
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestSortStable(t *testing.T) {
	c, err := From(Primitive(KindString), "bb", "aa", "ab")
	require.NoError(t, err)

	c.Sort(func(a, b string) bool { return a[0] < b[0] })

	assert.Equal(t, []string{"aa", "ab", "bb"}, c.Values())
}

func TestMapReturnsPlainSequence(t *testing.T) {
	c, err := From(Primitive(KindString), "a", "b")
	require.NoError(t, err)

	got := c.Map(func(v string) any { return strings.ToUpper(v) })

	assert.Equal(t, []any{"A", "B"}, got)
	assert.Equal(t, []string{"a", "b"}, c.Values(), "map must not mutate the source")
}

func TestFirst(t *testing.T) {
	c := New[int](Primitive(KindInteger))

	_, ok := c.First()
	assert.False(t, ok)

	require.NoError(t, c.Add(7))
	require.NoError(t, c.Add(9))
	v, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestFindFirst(t *testing.T) {
	c, err := From(Primitive(KindInteger), 1, 4, 6)
	require.NoError(t, err)

	v, ok := c.FindFirst(func(v int, _ Key) bool { return v%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = c.FindFirst(func(v int, _ Key) bool { return v > 100 })
	assert.False(t, ok)
}
