package utils

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the session cookie name for the admin surface.
const AccessTokenCookie = "switchboard_token"

// GetTokenFromCookie reads a token cookie, returning "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

// SetTokenCookie stores the session token as an HTTP-only cookie.
func SetTokenCookie(c *gin.Context, name, token string, maxAge int) {
	c.SetCookie(name, token, maxAge, "/", "", false, true)
}

// ClearTokenCookie expires the session cookie.
func ClearTokenCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
