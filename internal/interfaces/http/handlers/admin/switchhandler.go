// Package admin holds the authenticated management surface under /zbs.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"switchboard/internal/application/flag/dto"
	flagUsecases "switchboard/internal/application/flag/usecases"
	userUsecases "switchboard/internal/application/user/usecases"
	"switchboard/internal/interfaces/http/middleware"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

// SwitchHandler serves flag management for authenticated admins. Mutations
// on a specific flag go through the per-flag permission check first.
type SwitchHandler struct {
	listFlags     flagUsecases.ListFlagsExecutor
	getFlag       flagUsecases.GetFlagExecutor
	createFlag    flagUsecases.CreateFlagExecutor
	updateFlag    flagUsecases.UpdateFlagExecutor
	deleteFlag    flagUsecases.DeleteFlagExecutor
	resurrectFlag flagUsecases.ResurrectFlagExecutor
	syncFlags     flagUsecases.SyncFlagsExecutor
	authorizeEdit userUsecases.AuthorizeFlagEditExecutor
	logger        logger.Interface
}

func NewSwitchHandler(
	listFlags flagUsecases.ListFlagsExecutor,
	getFlag flagUsecases.GetFlagExecutor,
	createFlag flagUsecases.CreateFlagExecutor,
	updateFlag flagUsecases.UpdateFlagExecutor,
	deleteFlag flagUsecases.DeleteFlagExecutor,
	resurrectFlag flagUsecases.ResurrectFlagExecutor,
	syncFlags flagUsecases.SyncFlagsExecutor,
	authorizeEdit userUsecases.AuthorizeFlagEditExecutor,
	logger logger.Interface,
) *SwitchHandler {
	return &SwitchHandler{
		listFlags:     listFlags,
		getFlag:       getFlag,
		createFlag:    createFlag,
		updateFlag:    updateFlag,
		deleteFlag:    deleteFlag,
		resurrectFlag: resurrectFlag,
		syncFlags:     syncFlags,
		authorizeEdit: authorizeEdit,
		logger:        logger,
	}
}

// List answers GET /zbs/switches with optional group and show_hidden
// filters.
func (h *SwitchHandler) List(c *gin.Context) {
	showHidden, _ := strconv.ParseBool(c.Query("show_hidden"))

	response, err := h.listFlags.Execute(c.Request.Context(), flagUsecases.ListFlagsQuery{
		Group:      c.Query("group"),
		ShowHidden: showHidden,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Get answers GET /zbs/switches/:id with full detail and history.
func (h *SwitchHandler) Get(c *gin.Context) {
	id, ok := h.flagID(c)
	if !ok {
		return
	}

	response, err := h.getFlag.Execute(c.Request.Context(), flagUsecases.GetFlagQuery{FlagID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Create answers POST /zbs/switches/add. Reusing the name of a hidden
// flag overwrites and resurrects it.
func (h *SwitchHandler) Create(c *gin.Context) {
	var req dto.CreateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	response, err := h.createFlag.Execute(c.Request.Context(), flagUsecases.CreateFlagCommand{
		Name:       req.Name,
		IsActive:   req.IsActive,
		Groups:     req.Groups,
		Version:    req.Version,
		Comment:    req.Comment,
		TTLDays:    req.TTLDays,
		JiraTicket: req.JiraTicket,
		ActorID:    middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// Update answers POST /zbs/switches/:id with a partial patch.
func (h *SwitchHandler) Update(c *gin.Context) {
	id, ok := h.flagID(c)
	if !ok {
		return
	}
	if !h.authorize(c, id) {
		return
	}

	var req dto.UpdateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	response, err := h.updateFlag.Execute(c.Request.Context(), flagUsecases.UpdateFlagCommand{
		FlagID:       id,
		IsActive:     req.IsActive,
		Groups:       req.Groups,
		Version:      req.Version,
		ClearVersion: req.ClearVersion,
		Comment:      req.Comment,
		TTLDays:      req.TTLDays,
		JiraTicket:   req.JiraTicket,
		ActorID:      middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "switch updated", response)
}

// Delete answers GET /zbs/switches/:id/delete, scheduling the flag to
// disappear after its TTL.
func (h *SwitchHandler) Delete(c *gin.Context) {
	id, ok := h.flagID(c)
	if !ok {
		return
	}
	if !h.authorize(c, id) {
		return
	}

	if err := h.deleteFlag.Execute(c.Request.Context(), flagUsecases.DeleteFlagCommand{FlagID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "switch scheduled for deletion", nil)
}

// Resurrect answers GET /zbs/switches/:id/resurrect.
func (h *SwitchHandler) Resurrect(c *gin.Context) {
	id, ok := h.flagID(c)
	if !ok {
		return
	}
	if !h.authorize(c, id) {
		return
	}

	response, err := h.resurrectFlag.Execute(c.Request.Context(), flagUsecases.ResurrectFlagCommand{FlagID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "switch resurrected", response)
}

// Copy answers POST /zbs/switches/copy, importing flags from the
// configured remote instance.
func (h *SwitchHandler) Copy(c *gin.Context) {
	updateExisting, _ := strconv.ParseBool(c.Query("update_existing"))

	response, err := h.syncFlags.Execute(c.Request.Context(), flagUsecases.SyncFlagsCommand{
		UpdateExisting: updateExisting,
		ActorID:        middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "switches copied", response)
}

func (h *SwitchHandler) flagID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid switch ID")
		return 0, false
	}
	return uint(id), true
}

func (h *SwitchHandler) authorize(c *gin.Context, flagID uint) bool {
	err := h.authorizeEdit.Execute(c.Request.Context(), userUsecases.AuthorizeFlagEditQuery{
		UserID:      middleware.CurrentUserID(c),
		IsSuperuser: middleware.CurrentIsSuperuser(c),
		FlagID:      flagID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
