package service

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"techimpact/repository"
)

// cacheKey hashes the JSON form of a request under a calculator prefix.
func cacheKey(prefix string, req any) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return prefix + ":" + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// cached returns a stored response for req or computes and stores it.
// Cache failures are logged and never fail the calculation.
func cached[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	log zerolog.Logger,
	prefix string,
	req any,
	compute func() (T, error),
) (T, error) {
	if cache == nil {
		return compute()
	}

	key, err := cacheKey(prefix, req)
	if err != nil {
		log.Warn().Err(err).Str("calculator", prefix).Msg("cannot build cache key")
		return compute()
	}

	if raw, ok := cache.Get(ctx, key); ok {
		var hit T
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			log.Debug().Str("key", key).Msg("cache hit")
			return hit, nil
		}
		log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	if raw, err := json.Marshal(result); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cannot encode result for cache")
	} else if err := cache.Set(ctx, key, string(raw)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache calculation")
	}
	return result, nil
}
