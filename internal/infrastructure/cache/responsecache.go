// Package cache provides the Redis-backed response cache for the public
// evaluation endpoint.
package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"switchboard/internal/shared/logger"
)

// ResponseCache memoizes serialized responses under deterministic keys with
// a fixed TTL. There is no write-path invalidation: admin mutations become
// visible once the TTL lapses, and concurrent misses may recompute the same
// value, which is harmless because computation is read-only.
type ResponseCache struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

// NewResponseCache creates a cache over the given Redis client. The prefix
// namespaces keys, e.g. "switchboard:response:".
func NewResponseCache(client *redis.Client, prefix string, logger logger.Interface) *ResponseCache {
	return &ResponseCache{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// GetOrCompute returns the cached payload for key, or invokes compute,
// stores its result for ttl and returns it. Redis failures degrade to
// direct computation rather than erroring the request.
func (c *ResponseCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	fullKey := c.prefix + key

	cached, err := c.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warnw("response cache read failed, computing directly", "key", fullKey, "error", err)
	}

	payload, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, fullKey, payload, ttl).Err(); err != nil {
		c.logger.Warnw("response cache write failed", "key", fullKey, "error", err)
	}
	return payload, nil
}

// EvaluationKey builds the cache key for an evaluation query from its
// validated parameters. Requests with equal (view, group, version,
// is_active) collide regardless of URL parameter order; a difference in any
// parameter yields a distinct key. The group is escaped so a group name
// containing the separator cannot alias another query.
func EvaluationKey(view, group string, version *int, isActive bool) string {
	versionPart := "null"
	if version != nil {
		versionPart = strconv.Itoa(*version)
	}
	return fmt.Sprintf("switch_list:%s:%s:%s:%t", view, url.QueryEscape(group), versionPart, isActive)
}
