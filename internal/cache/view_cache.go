package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ViewCache is a JSON-backed Redis cache bound to one value type.
// Failures are logged and reported as misses; a broken cache never fails a caller.
type ViewCache[T any] struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	log    logrus.FieldLogger
}

// NewViewCache creates a ViewCache storing keys under prefix. A zero ttl keeps keys forever.
func NewViewCache[T any](client redis.Cmdable, prefix string, ttl time.Duration, log logrus.FieldLogger) *ViewCache[T] {
	return &ViewCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log.WithField("component", "cache"),
	}
}

// Key returns the full Redis key for id.
func (c *ViewCache[T]) Key(id string) string {
	return c.prefix + id
}

// Get returns the cached value for id, or (nil, false) on miss or decode failure.
func (c *ViewCache[T]) Get(ctx context.Context, id string) (*T, bool) {
	key := c.Key(id)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache decode failed")
		return nil, false
	}
	return &v, true
}

// Set stores value under id.
func (c *ViewCache[T]) Set(ctx context.Context, id string, value *T) {
	key := c.Key(id)
	data, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// Delete removes id from the cache.
func (c *ViewCache[T]) Delete(ctx context.Context, id string) {
	key := c.Key(id)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache delete failed")
	}
}
