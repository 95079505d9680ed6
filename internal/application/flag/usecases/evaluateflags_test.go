package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/cache"
)

func setupResponseCache(t *testing.T) *cache.ResponseCache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewResponseCache(client, "test:", newNopLogger())
}

func TestEvaluateFlagsUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeFlagRepo) {
		for _, spec := range []struct {
			name     string
			isActive bool
			groups   []string
		}{
			{"zeta", true, []string{"backend"}},
			{"alpha", true, []string{"backend"}},
			{"off_flag", false, []string{"backend"}},
			{"other_group", true, []string{"mobile"}},
		} {
			f, err := flag.NewFlag(spec.name, spec.isActive, spec.groups, nil, "", 14, "")
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, f))
		}
	}

	t.Run("returns sorted names for the group", func(t *testing.T) {
		repo := newFakeFlagRepo()
		seed(repo)
		uc := NewEvaluateFlagsUseCase(repo, setupResponseCache(t), 5*time.Minute, newNopLogger())

		body, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "backend", IsActive: true})
		require.NoError(t, err)

		var response dto.EvaluationResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, []string{"alpha", "zeta"}, response.Result)
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := newFakeFlagRepo()
		seed(repo)
		uc := NewEvaluateFlagsUseCase(repo, setupResponseCache(t), 5*time.Minute, newNopLogger())

		first, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "backend", IsActive: true})
		require.NoError(t, err)

		// Mutations after caching stay invisible until the TTL lapses.
		extra, err := flag.NewFlag("brand_new", true, []string{"backend"}, nil, "", 14, "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, extra))

		second, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "backend", IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("different parameters bypass each other's entries", func(t *testing.T) {
		repo := newFakeFlagRepo()
		seed(repo)
		uc := NewEvaluateFlagsUseCase(repo, setupResponseCache(t), 5*time.Minute, newNopLogger())

		active, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "backend", IsActive: true})
		require.NoError(t, err)

		inactive, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "backend", IsActive: false})
		require.NoError(t, err)
		assert.NotEqual(t, string(active), string(inactive))

		var response dto.EvaluationResponse
		require.NoError(t, json.Unmarshal(inactive, &response))
		assert.Equal(t, []string{"off_flag"}, response.Result)
	})

	t.Run("empty result has an empty list, not null", func(t *testing.T) {
		repo := newFakeFlagRepo()
		uc := NewEvaluateFlagsUseCase(repo, setupResponseCache(t), 5*time.Minute, newNopLogger())

		body, err := uc.Execute(ctx, EvaluateFlagsQuery{Group: "nothing", IsActive: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":0,"result":[]}`, string(body))
	})
}
