package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/domain/user"
	"switchboard/internal/infrastructure/auth"
	"switchboard/internal/shared/config"
	"switchboard/internal/shared/errors"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", AccessExpMinutes: 60})
}

func seedUser(t *testing.T, repo *fakeUserRepo, hasher *auth.PasswordHasher, login, password string, isSuperuser bool) *user.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	u, err := user.NewUser(login, hash, isSuperuser)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginUseCase(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(4)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := seedUser(t, repo, hasher, "alice", "s3cret-pass", true)
		uc := NewLoginUseCase(repo, hasher, testJWTService(), newNopLogger())

		got, err := uc.Execute(ctx, LoginCommand{Login: "alice", Password: "s3cret-pass"})
		require.NoError(t, err)

		assert.Equal(t, "alice", got.Login)
		assert.True(t, got.IsSuperuser)

		claims, err := testJWTService().Verify(got.Token)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), claims.UserID)
		assert.True(t, claims.IsSuperuser)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, hasher, "alice", "s3cret-pass", false)
		uc := NewLoginUseCase(repo, hasher, testJWTService(), newNopLogger())

		_, err := uc.Execute(ctx, LoginCommand{Login: "alice", Password: "wrong"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("unknown login yields the same error as a wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, hasher, "alice", "s3cret-pass", false)
		uc := NewLoginUseCase(repo, hasher, testJWTService(), newNopLogger())

		_, wrongPass := uc.Execute(ctx, LoginCommand{Login: "alice", Password: "wrong"})
		_, unknown := uc.Execute(ctx, LoginCommand{Login: "nobody", Password: "wrong"})
		assert.Equal(t, wrongPass.Error(), unknown.Error())
	})

	t.Run("disabled account is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := seedUser(t, repo, hasher, "alice", "s3cret-pass", false)
		u.SetDisabled(true)
		require.NoError(t, repo.Update(ctx, u))
		uc := NewLoginUseCase(repo, hasher, testJWTService(), newNopLogger())

		_, err := uc.Execute(ctx, LoginCommand{Login: "alice", Password: "s3cret-pass"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})
}

func TestAuthorizeFlagEditUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("superuser may edit anything", func(t *testing.T) {
		uc := NewAuthorizeFlagEditUseCase(newFakeUserRepo(), newNopLogger())
		assert.NoError(t, uc.Execute(ctx, AuthorizeFlagEditQuery{UserID: 1, IsSuperuser: true, FlagID: 99}))
	})

	t.Run("assigned flag is allowed", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.assignments[5] = []uint{3, 7}
		uc := NewAuthorizeFlagEditUseCase(repo, newNopLogger())

		assert.NoError(t, uc.Execute(ctx, AuthorizeFlagEditQuery{UserID: 5, FlagID: 7}))
	})

	t.Run("unassigned flag is forbidden", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.assignments[5] = []uint{3}
		uc := NewAuthorizeFlagEditUseCase(repo, newNopLogger())

		err := uc.Execute(ctx, AuthorizeFlagEditQuery{UserID: 5, FlagID: 7})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})
}
