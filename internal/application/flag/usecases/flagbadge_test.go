package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/shared/config"
)

func badgeConfig() config.BadgeConfig {
	return config.BadgeConfig{
		BackgroundColor: "#ff6c6c",
		ActivePrefix:    "on",
		InactivePrefix:  "off",
		HiddenPrefix:    "hidden",
		NotFoundPrefix:  "unknown",
	}
}

func TestFlagBadgeUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("active flag", func(t *testing.T) {
		repo := newFakeFlagRepo()
		f := seedFlag(t, repo, "checkout", true)
		uc := NewFlagBadgeUseCase(repo, badgeConfig(), newNopLogger())

		svg, err := uc.Execute(ctx, FlagBadgeQuery{FlagID: f.ID(), Hostname: "flags.example.com"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(svg, "<svg"))
		assert.Contains(t, svg, "on flags.example.com")
		assert.Contains(t, svg, "checkout")
		assert.NotContains(t, svg, "(hidden)")
	})

	t.Run("inactive flag", func(t *testing.T) {
		repo := newFakeFlagRepo()
		f := seedFlag(t, repo, "checkout", false)
		uc := NewFlagBadgeUseCase(repo, badgeConfig(), newNopLogger())

		svg, err := uc.Execute(ctx, FlagBadgeQuery{FlagID: f.ID(), Hostname: "flags.example.com"})
		require.NoError(t, err)
		assert.Contains(t, svg, "off flags.example.com")
	})

	t.Run("pending hide flag", func(t *testing.T) {
		repo := newFakeFlagRepo()
		f := seedFlag(t, repo, "checkout", true)
		f.SoftDelete(time.Now())
		require.NoError(t, repo.Update(ctx, f))
		uc := NewFlagBadgeUseCase(repo, badgeConfig(), newNopLogger())

		svg, err := uc.Execute(ctx, FlagBadgeQuery{FlagID: f.ID(), Hostname: "flags.example.com"})
		require.NoError(t, err)
		assert.Contains(t, svg, "hidden flags.example.com")
		assert.Contains(t, svg, "checkout (hidden)")
	})

	t.Run("expired flag", func(t *testing.T) {
		repo := newFakeFlagRepo()
		f := seedFlag(t, repo, "checkout", true)
		f.SoftDelete(time.Now().Add(-30 * 24 * time.Hour))
		require.NoError(t, repo.Update(ctx, f))
		uc := NewFlagBadgeUseCase(repo, badgeConfig(), newNopLogger())

		svg, err := uc.Execute(ctx, FlagBadgeQuery{FlagID: f.ID(), Hostname: "flags.example.com"})
		require.NoError(t, err)
		assert.Contains(t, svg, "checkout (deleted)")
	})

	t.Run("unknown flag renders a not-found badge", func(t *testing.T) {
		uc := NewFlagBadgeUseCase(newFakeFlagRepo(), badgeConfig(), newNopLogger())

		svg, err := uc.Execute(ctx, FlagBadgeQuery{FlagID: 42, Hostname: "flags.example.com"})
		require.NoError(t, err)
		assert.Contains(t, svg, "unknown flags.example.com")
		assert.Contains(t, svg, "not found")
	})
}
