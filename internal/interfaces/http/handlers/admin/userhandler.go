package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"switchboard/internal/application/user/dto"
	userUsecases "switchboard/internal/application/user/usecases"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

// UserHandler serves account management. Routes are superuser-only.
type UserHandler struct {
	listUsers  userUsecases.ListUsersExecutor
	getUser    userUsecases.GetUserExecutor
	createUser userUsecases.CreateUserExecutor
	updateUser userUsecases.UpdateUserExecutor
	logger     logger.Interface
}

func NewUserHandler(
	listUsers userUsecases.ListUsersExecutor,
	getUser userUsecases.GetUserExecutor,
	createUser userUsecases.CreateUserExecutor,
	updateUser userUsecases.UpdateUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsers:  listUsers,
		getUser:    getUser,
		createUser: createUser,
		updateUser: updateUser,
		logger:     logger,
	}
}

// List answers GET /zbs/users.
func (h *UserHandler) List(c *gin.Context) {
	response, err := h.listUsers.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Get answers GET /zbs/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	response, err := h.getUser.Execute(c.Request.Context(), userUsecases.GetUserQuery{UserID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Create answers POST /zbs/users/add.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	response, err := h.createUser.Execute(c.Request.Context(), userUsecases.CreateUserCommand{
		Login:       req.Login,
		Password:    req.Password,
		IsSuperuser: req.IsSuperuser,
		FlagIDs:     req.FlagIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// Update answers POST /zbs/users/:id with a partial patch.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	response, err := h.updateUser.Execute(c.Request.Context(), userUsecases.UpdateUserCommand{
		UserID:      id,
		Password:    req.Password,
		IsSuperuser: req.IsSuperuser,
		Disabled:    req.Disabled,
		FlagIDs:     req.FlagIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", response)
}

func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	return uint(id), true
}
