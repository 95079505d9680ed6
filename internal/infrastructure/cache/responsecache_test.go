package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestResponseCache_GetOrCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and caches", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewResponseCache(client, "test:", newNopLogger())

		calls := 0
		compute := func(ctx context.Context) ([]byte, error) {
			calls++
			return []byte(`{"count":1}`), nil
		}

		got, err := cache.GetOrCompute(ctx, "k", time.Minute, compute)
		require.NoError(t, err)
		assert.Equal(t, `{"count":1}`, string(got))
		assert.Equal(t, 1, calls)

		got, err = cache.GetOrCompute(ctx, "k", time.Minute, compute)
		require.NoError(t, err)
		assert.Equal(t, `{"count":1}`, string(got))
		assert.Equal(t, 1, calls, "second call must be served from the cache")

		ttl := mr.TTL("test:k")
		assert.Equal(t, time.Minute, ttl)
	})

	t.Run("expired entry recomputes", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewResponseCache(client, "test:", newNopLogger())

		calls := 0
		compute := func(ctx context.Context) ([]byte, error) {
			calls++
			return []byte("v"), nil
		}

		_, err := cache.GetOrCompute(ctx, "k", time.Minute, compute)
		require.NoError(t, err)

		mr.FastForward(2 * time.Minute)

		_, err = cache.GetOrCompute(ctx, "k", time.Minute, compute)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("compute error is not cached", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewResponseCache(client, "test:", newNopLogger())

		_, err := cache.GetOrCompute(ctx, "k", time.Minute, func(ctx context.Context) ([]byte, error) {
			return nil, errors.New("boom")
		})
		assert.Error(t, err)
		assert.False(t, mr.Exists("test:k"))
	})

	t.Run("redis outage degrades to direct computation", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewResponseCache(client, "test:", newNopLogger())
		mr.Close()

		got, err := cache.GetOrCompute(ctx, "k", time.Minute, func(ctx context.Context) ([]byte, error) {
			return []byte("direct"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "direct", string(got))
	})
}

func TestEvaluationKey(t *testing.T) {
	version := 4

	t.Run("deterministic", func(t *testing.T) {
		a := EvaluationKey("switch", "backend", &version, true)
		b := EvaluationKey("switch", "backend", &version, true)
		assert.Equal(t, a, b)
	})

	t.Run("each parameter contributes", func(t *testing.T) {
		base := EvaluationKey("switch", "backend", &version, true)
		assert.NotEqual(t, base, EvaluationKey("switch", "mobile", &version, true))
		assert.NotEqual(t, base, EvaluationKey("switch", "backend", nil, true))
		assert.NotEqual(t, base, EvaluationKey("switch", "backend", &version, false))
		assert.NotEqual(t, base, EvaluationKey("full", "backend", &version, true))
	})

	t.Run("separator in group name cannot alias", func(t *testing.T) {
		v := 1
		a := EvaluationKey("switch", "backend:1", nil, true)
		b := EvaluationKey("switch", "backend", &v, true)
		assert.NotEqual(t, a, b)
	})
}
