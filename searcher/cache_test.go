package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	_, err := NewCache[string, int](0)
	require.Error(t, err)

	c, err := NewCache[string, int](3)
	require.NoError(t, err)
	require.Equal(t, 3, c.Capacity())
	require.Equal(t, 0, c.Len())
}

func TestCacheEviction(t *testing.T) {
	t.Run("least recently added entry is evicted first", func(t *testing.T) {
		c, err := NewCache[string, int](2)
		require.NoError(t, err)
		require.False(t, c.Add("a", 1))
		require.False(t, c.Add("b", 2))
		require.True(t, c.Add("c", 3), "Adding past capacity should evict")

		_, ok := c.Get("a")
		require.False(t, ok)
		require.Equal(t, 2, c.Len())
	})

	t.Run("get refreshes recency", func(t *testing.T) {
		c, err := NewCache[string, int](2)
		require.NoError(t, err)
		c.Add("a", 1)
		c.Add("b", 2)
		v, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)

		c.Add("c", 3)
		_, ok = c.Get("b")
		require.False(t, ok, "b was least recently accessed")
		_, ok = c.Get("a")
		require.True(t, ok)
	})

	t.Run("re-adding refreshes recency and replaces the value", func(t *testing.T) {
		c, err := NewCache[string, int](2)
		require.NoError(t, err)
		c.Add("a", 1)
		c.Add("b", 2)
		c.Add("a", 10)
		require.Equal(t, []string{"b", "a"}, c.Keys())

		c.Add("c", 3)
		v, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, 10, v)
		_, ok = c.Get("b")
		require.False(t, ok)
	})

	t.Run("purge empties the cache", func(t *testing.T) {
		c, err := NewCache[string, int](2)
		require.NoError(t, err)
		c.Add("a", 1)
		c.Purge()
		require.Equal(t, 0, c.Len())
	})
}
