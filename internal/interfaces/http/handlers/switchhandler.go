// Package handlers holds the public evaluation surface. Admin handlers
// live in the admin subpackage.
package handlers

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	flagUsecases "switchboard/internal/application/flag/usecases"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

const missingFieldMessage = "Missing data for required field."

// SwitchHandler serves the unauthenticated evaluation endpoints consumed
// by application frontends and backends.
type SwitchHandler struct {
	evaluateFlags flagUsecases.EvaluateFlagsExecutor
	fullInfo      flagUsecases.FullInfoExecutor
	flagBadge     flagUsecases.FlagBadgeExecutor
	fullInfoOpen  bool
	logger        logger.Interface
}

func NewSwitchHandler(
	evaluateFlags flagUsecases.EvaluateFlagsExecutor,
	fullInfo flagUsecases.FullInfoExecutor,
	flagBadge flagUsecases.FlagBadgeExecutor,
	fullInfoOpen bool,
	logger logger.Interface,
) *SwitchHandler {
	return &SwitchHandler{
		evaluateFlags: evaluateFlags,
		fullInfo:      fullInfo,
		flagBadge:     flagBadge,
		fullInfoOpen:  fullInfoOpen,
		logger:        logger,
	}
}

// Evaluate answers GET /api/v1/switch. The group parameter is required;
// is_active defaults to true. Validation failures return bare field error
// maps with status 422, the shape existing consumers parse.
func (h *SwitchHandler) Evaluate(c *gin.Context) {
	query := c.Request.URL.Query()

	if !query.Has("group") {
		utils.FieldErrorResponse(c, map[string][]string{"group": {missingFieldMessage}})
		return
	}
	group := query.Get("group")

	isActive := true
	if raw := query.Get("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.FieldErrorResponse(c, map[string][]string{"is_active": {"Not a valid boolean."}})
			return
		}
		isActive = parsed
	}

	var version *int
	if raw := query.Get("version"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.FieldErrorResponse(c, map[string][]string{"version": {"Not a valid integer."}})
			return
		}
		version = &parsed
	}

	body, err := h.evaluateFlags.Execute(c.Request.Context(), flagUsecases.EvaluateFlagsQuery{
		Group:    group,
		IsActive: isActive,
		Version:  version,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// FullInfo answers GET /api/v1/switches_full_info. The endpoint is off by
// default and answers 404 when disabled, indistinguishable from an
// unknown route.
func (h *SwitchHandler) FullInfo(c *gin.Context) {
	if !h.fullInfoOpen {
		c.Status(http.StatusNotFound)
		return
	}

	response, err := h.fullInfo.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SvgBadge answers GET /api/v1/switches/:id/svg-badge with a flat SVG
// status badge. A malformed or unknown ID still renders a badge, so
// embedded images never break.
func (h *SwitchHandler) SvgBadge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		id = 0
	}

	svg, execErr := h.flagBadge.Execute(c.Request.Context(), flagUsecases.FlagBadgeQuery{
		FlagID:   uint(id),
		Hostname: requestHostname(c),
	})
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

func requestHostname(c *gin.Context) string {
	host := c.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
