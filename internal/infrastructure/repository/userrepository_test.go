package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/domain/user"
)

func createTestUser(t *testing.T, login string, isSuperuser bool) *user.User {
	t.Helper()
	u, err := user.NewUser(login, "$2a$12$fakehashfakehashfakehash", isSuperuser)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newNopLogger())
	ctx := context.Background()

	u := createTestUser(t, "alice", true)
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	t.Run("duplicate login rejected", func(t *testing.T) {
		dup := createTestUser(t, "alice", false)
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
	})

	t.Run("find by login", func(t *testing.T) {
		found, err := repo.FindByLogin(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
		assert.True(t, found.IsSuperuser())
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := repo.FindByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, newNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "zoe", false)))
	require.NoError(t, repo.Create(ctx, createTestUser(t, "adam", false)))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "adam", users[0].Login(), "listing is ordered by login")
	assert.Equal(t, "zoe", users[1].Login())
}

func TestUserRepository_Assignments(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db, newNopLogger())
	flagRepo := NewSwitchRepository(db, newNopLogger())
	ctx := context.Background()

	u := createTestUser(t, "bob", false)
	require.NoError(t, userRepo.Create(ctx, u))

	f1 := createTestFlag(t, "one", true, []string{"backend"})
	f2 := createTestFlag(t, "two", true, []string{"backend"})
	require.NoError(t, flagRepo.Create(ctx, f1))
	require.NoError(t, flagRepo.Create(ctx, f2))

	t.Run("no assignments initially", func(t *testing.T) {
		ids, err := userRepo.AssignedFlagIDs(ctx, u.ID())
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("replace sets the full assignment set", func(t *testing.T) {
		require.NoError(t, userRepo.ReplaceAssignments(ctx, u.ID(), []uint{f1.ID(), f2.ID()}))

		ids, err := userRepo.AssignedFlagIDs(ctx, u.ID())
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{f1.ID(), f2.ID()}, ids)
	})

	t.Run("replace drops removed assignments", func(t *testing.T) {
		require.NoError(t, userRepo.ReplaceAssignments(ctx, u.ID(), []uint{f2.ID()}))

		ids, err := userRepo.AssignedFlagIDs(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, []uint{f2.ID()}, ids)
	})

	t.Run("replace with empty set clears everything", func(t *testing.T) {
		require.NoError(t, userRepo.ReplaceAssignments(ctx, u.ID(), nil))

		ids, err := userRepo.AssignedFlagIDs(ctx, u.ID())
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
