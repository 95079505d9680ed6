package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
)

func seedFlag(t *testing.T, repo *fakeFlagRepo, name string, isActive bool) *flag.Flag {
	t.Helper()
	f, err := flag.NewFlag(name, isActive, []string{"backend"}, nil, "", 14, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), f))
	return f
}

func TestUpdateFlagUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("patch touching is_active logs history", func(t *testing.T) {
		flagRepo := newFakeFlagRepo()
		historyRepo := newFakeHistoryRepo()
		uc := NewUpdateFlagUseCase(flagRepo, historyRepo, newNopLogger())

		f := seedFlag(t, flagRepo, "flag", true)

		got, err := uc.Execute(ctx, UpdateFlagCommand{
			FlagID:   f.ID(),
			IsActive: boolPtr(false),
			ActorID:  7,
		})
		require.NoError(t, err)

		assert.False(t, got.IsActive)
		require.Len(t, historyRepo.entries, 1)
		assert.Equal(t, "false", historyRepo.entries[0].NewValue())
		assert.Equal(t, uint(7), historyRepo.entries[0].UserID())
	})

	t.Run("idempotent is_active patch still logs history", func(t *testing.T) {
		flagRepo := newFakeFlagRepo()
		historyRepo := newFakeHistoryRepo()
		uc := NewUpdateFlagUseCase(flagRepo, historyRepo, newNopLogger())

		f := seedFlag(t, flagRepo, "flag", true)

		_, err := uc.Execute(ctx, UpdateFlagCommand{FlagID: f.ID(), IsActive: boolPtr(true), ActorID: 7})
		require.NoError(t, err)
		assert.Len(t, historyRepo.entries, 1)
	})

	t.Run("patch not touching is_active logs nothing", func(t *testing.T) {
		flagRepo := newFakeFlagRepo()
		historyRepo := newFakeHistoryRepo()
		uc := NewUpdateFlagUseCase(flagRepo, historyRepo, newNopLogger())

		f := seedFlag(t, flagRepo, "flag", true)

		comment := "note"
		got, err := uc.Execute(ctx, UpdateFlagCommand{FlagID: f.ID(), Comment: &comment})
		require.NoError(t, err)

		assert.Equal(t, "note", got.Comment)
		assert.Empty(t, historyRepo.entries)
	})

	t.Run("unknown flag", func(t *testing.T) {
		uc := NewUpdateFlagUseCase(newFakeFlagRepo(), newFakeHistoryRepo(), newNopLogger())

		_, err := uc.Execute(ctx, UpdateFlagCommand{FlagID: 42})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteAndResurrectFlagUseCases(t *testing.T) {
	ctx := context.Background()
	flagRepo := newFakeFlagRepo()

	f := seedFlag(t, flagRepo, "doomed", true)

	deleteUC := NewDeleteFlagUseCase(flagRepo, newNopLogger())
	require.NoError(t, deleteUC.Execute(ctx, DeleteFlagCommand{FlagID: f.ID()}))

	stored, err := flagRepo.FindByID(ctx, f.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.DeletedAt())
	assert.Equal(t, flag.StatePendingHide, stored.State(stored.UpdatedAt()))

	resurrectUC := NewResurrectFlagUseCase(flagRepo, newNopLogger())
	got, err := resurrectUC.Execute(ctx, ResurrectFlagCommand{FlagID: f.ID()})
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}
