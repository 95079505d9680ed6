package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
)

func TestCreateFlagUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new flag", func(t *testing.T) {
		flagRepo := newFakeFlagRepo()
		historyRepo := newFakeHistoryRepo()
		uc := NewCreateFlagUseCase(flagRepo, historyRepo, 14, newNopLogger())

		got, err := uc.Execute(ctx, CreateFlagCommand{
			Name:     "new_checkout",
			IsActive: true,
			Groups:   []string{"backend"},
			ActorID:  1,
		})
		require.NoError(t, err)

		assert.NotZero(t, got.ID)
		assert.Equal(t, "new_checkout", got.Name)
		assert.Equal(t, 14, got.TTLDays, "missing ttl falls back to the default")
		assert.Empty(t, historyRepo.entries, "fresh creation does not log history")
	})

	t.Run("reusing a hidden name overwrites and resurrects", func(t *testing.T) {
		flagRepo := newFakeFlagRepo()
		historyRepo := newFakeHistoryRepo()
		uc := NewCreateFlagUseCase(flagRepo, historyRepo, 14, newNopLogger())

		old, err := flag.NewFlag("legacy", false, []string{"backend"}, nil, "old comment", 14, "")
		require.NoError(t, err)
		require.NoError(t, flagRepo.Create(ctx, old))
		old.SoftDelete(time.Now().Add(-30 * 24 * time.Hour))
		require.NoError(t, flagRepo.Update(ctx, old))

		got, err := uc.Execute(ctx, CreateFlagCommand{
			Name:     "legacy",
			IsActive: true,
			Groups:   []string{"mobile"},
			Comment:  "revived",
			TTLDays:  7,
			ActorID:  3,
		})
		require.NoError(t, err)

		assert.Equal(t, old.ID(), got.ID, "the existing row is reused")
		assert.True(t, got.IsActive)
		assert.Equal(t, []string{"mobile"}, got.Groups)
		assert.Equal(t, "revived", got.Comment)
		assert.Nil(t, got.DeletedAt)
		assert.False(t, got.IsHidden)

		require.Len(t, historyRepo.entries, 1)
		assert.Equal(t, "true", historyRepo.entries[0].NewValue())
		assert.Equal(t, uint(3), historyRepo.entries[0].UserID())
	})

	t.Run("invalid groups rejected", func(t *testing.T) {
		uc := NewCreateFlagUseCase(newFakeFlagRepo(), newFakeHistoryRepo(), 14, newNopLogger())

		_, err := uc.Execute(ctx, CreateFlagCommand{Name: "f", Groups: nil})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
