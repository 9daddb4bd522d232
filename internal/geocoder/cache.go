package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheKeyPrefix = "geocode:"

// notFoundSentinel marks a cached miss. Addresses Kakao cannot resolve stay
// unresolvable between edits of the listing, so misses are worth caching too.
const notFoundSentinel = "!notfound"

// Cache is a read-through Redis decorator over a Geocoder. Cache failures
// are logged and degrade to the inner geocoder, never to the caller.
type Cache struct {
	next   Geocoder
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCache wraps next with a Redis cache using the given TTL per entry.
func NewCache(next Geocoder, rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *Cache {
	return &Cache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

// Forward serves from cache when possible, otherwise asks the inner geocoder
// and stores its answer. Transient inner errors are not cached.
func (c *Cache) Forward(ctx context.Context, address string) (models.Coordinate, error) {
	key := cacheKeyPrefix + address

	raw, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if raw == notFoundSentinel {
			return models.Coordinate{}, ErrNotFound
		}
		var coord models.Coordinate
		if jerr := json.Unmarshal([]byte(raw), &coord); jerr == nil {
			return coord, nil
		}
		// Unreadable entry, fall through and overwrite it.
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Msg("geocode cache read failed")
	}

	coord, err := c.next.Forward(ctx, address)
	if errors.Is(err, ErrNotFound) {
		c.store(ctx, key, []byte(notFoundSentinel))
		return models.Coordinate{}, ErrNotFound
	}
	if err != nil {
		return models.Coordinate{}, err
	}

	if raw, jerr := json.Marshal(coord); jerr == nil {
		c.store(ctx, key, raw)
	}
	return coord, nil
}

func (c *Cache) store(ctx context.Context, key string, value []byte) {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("geocode cache write failed")
	}
}
