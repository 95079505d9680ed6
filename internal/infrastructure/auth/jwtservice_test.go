package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/shared/config"
)

func newTestJWTService(secret string, expMinutes int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:           secret,
		AccessExpMinutes: expMinutes,
	})
}

func TestJWTService_SignAndVerify(t *testing.T) {
	service := newTestJWTService("test-secret", 60)

	token, expiresAt, err := service.Sign(42, "ops", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ops", claims.Login)
	assert.True(t, claims.IsSuperuser)
	assert.Equal(t, "switchboard", claims.Issuer)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, _, err := newTestJWTService("secret-one", 60).Sign(1, "ops", false)
	require.NoError(t, err)

	_, err = newTestJWTService("secret-two", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	service := newTestJWTService("test-secret", -1)

	token, _, err := service.Sign(1, "ops", false)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := newTestJWTService("test-secret", 60).Verify("not-a-token")
	assert.Error(t, err)
}
