package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New[string, int](Config{MaxSize: 2})
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 28, 3, 26, 0, 0, time.UTC)
	c := New[string, string](Config{MaxSize: 10, TTL: time.Minute})
	c.now = func() time.Time { return now }

	c.Set("old", "x")
	now = now.Add(30 * time.Second)
	c.Set("fresh", "y")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, c.CleanupExpired())
	_, ok := c.Get("old")
	assert.False(t, ok)
	_, ok = c.Get("fresh")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get("fresh")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_GetOrLoad(t *testing.T) {
	t.Parallel()

	c := New[string, []byte](Config{MaxSize: 4})
	var loads int
	load := func() ([]byte, error) {
		loads++
		return []byte("hello"), nil
	}

	v, hit, err := c.GetOrLoad("hello.html", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte("hello"), v)

	v, hit, err = c.GetOrLoad("hello.html", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("hello"), v)
	assert.Equal(t, 1, loads)

	errLoad := errors.New("missing")
	_, _, err = c.GetOrLoad("404.html", func() ([]byte, error) { return nil, errLoad })
	assert.ErrorIs(t, err, errLoad)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
