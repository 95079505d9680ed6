package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"switchboard/internal/application/user/dto"
	userUsecases "switchboard/internal/application/user/usecases"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

// AuthHandler serves login and logout for the admin surface. The issued
// token is returned in the body and also set as an HTTP-only cookie.
type AuthHandler struct {
	login  userUsecases.LoginExecutor
	logger logger.Interface
}

func NewAuthHandler(login userUsecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{login: login, logger: logger}
}

// Login answers POST /zbs/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	response, err := h.login.Execute(c.Request.Context(), userUsecases.LoginCommand{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(response.ExpiresAt).Seconds())
	utils.SetTokenCookie(c, utils.AccessTokenCookie, response.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "logged in", response)
}

// Logout answers POST /zbs/logout by expiring the session cookie. The
// token itself stays valid until its expiry; there is no server-side
// session store.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearTokenCookie(c, utils.AccessTokenCookie)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}
