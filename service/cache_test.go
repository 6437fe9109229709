package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techimpact/repository"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, bool) { return "{not json", true }

func (brokenCache) Set(context.Context, string, string) error { return errors.New("cache down") }

func TestCacheKey(t *testing.T) {
	a, err := cacheKey("sla", map[string]int{"x": 1})
	require.NoError(t, err)
	b, err := cacheKey("sla", map[string]int{"x": 1})
	require.NoError(t, err)
	c, err := cacheKey("rto", map[string]int{"x": 1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "sla:")
}

func TestCached_StoresAndReuses(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := cached(context.Background(), cache, zerolog.Nop(), "test", "req", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls)
}

func TestCached_ErrorsAreNotStored(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	_, err := cached(context.Background(), cache, zerolog.Nop(), "test", "req", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 0, cache.Len())
}

func TestCached_BrokenCacheStillComputes(t *testing.T) {
	v, err := cached(context.Background(), brokenCache{}, zerolog.Nop(), "test", "req", func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}
