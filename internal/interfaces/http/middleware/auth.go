package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"switchboard/internal/infrastructure/auth"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextKeyUserID      = "user_id"
	ContextKeyLogin       = "login"
	ContextKeyIsSuperuser = "is_superuser"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the session token from the cookie or the
// Authorization header and stores the identity in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyLogin, claims.Login)
		c.Set(ContextKeyIsSuperuser, claims.IsSuperuser)

		c.Next()
	}
}

// RequireSuperuser rejects requests whose authenticated identity lacks the
// superuser bit. It must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeyIsSuperuser) {
			utils.ErrorResponse(c, http.StatusForbidden, "superuser access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID set by RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	if id, ok := c.Get(ContextKeyUserID); ok {
		if uid, ok := id.(uint); ok {
			return uid
		}
	}
	return 0
}

// CurrentIsSuperuser reports the authenticated superuser bit.
func CurrentIsSuperuser(c *gin.Context) bool {
	return c.GetBool(ContextKeyIsSuperuser)
}
