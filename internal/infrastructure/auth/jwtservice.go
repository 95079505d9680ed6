// Package auth provides JWT session tokens and password hashing for the
// admin surface.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"switchboard/internal/shared/config"
)

// Claims carries the authenticated admin identity inside the session token.
type Claims struct {
	UserID      uint   `json:"uid"`
	Login       string `json:"login"`
	IsSuperuser bool   `json:"su"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies admin session tokens.
type JWTService struct {
	secret    []byte
	accessExp time.Duration
}

// NewJWTService creates a JWTService from configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:    []byte(cfg.Secret),
		accessExp: time.Duration(cfg.AccessExpMinutes) * time.Minute,
	}
}

// Sign issues a token for the given user, returning the token and its
// expiry instant.
func (s *JWTService) Sign(userID uint, login string, isSuperuser bool) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.accessExp)
	claims := Claims{
		UserID:      userID,
		Login:       login,
		IsSuperuser: isSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "switchboard",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
