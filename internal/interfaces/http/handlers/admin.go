package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zemuria/ops-console/internal/application/command"
	"github.com/zemuria/ops-console/internal/application/query"
	"github.com/zemuria/ops-console/internal/domain/entity"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

// AdminHandler serves the manual-override workbench
type AdminHandler struct {
	operationsQuery *query.GetOperationsQuery
	grantCmd        *command.GrantAccessCommand
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(operationsQuery *query.GetOperationsQuery, grantCmd *command.GrantAccessCommand) *AdminHandler {
	return &AdminHandler{
		operationsQuery: operationsQuery,
		grantCmd:        grantCmd,
	}
}

// Operations serves the override workbench page
// @Summary Override workbench: option sets, fresh draft, audit trail
// @Tags admin
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=dto.OperationsView}
// @Router /admin/operations [get]
func (h *AdminHandler) Operations(c *gin.Context) {
	view, err := h.operationsQuery.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, view)
}

// Draft mints a fresh override draft without reloading the listings
// @Summary New prefilled override draft
// @Tags admin
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=entity.OverrideRequest}
// @Router /admin/draft [get]
func (h *AdminHandler) Draft(c *gin.Context) {
	response.OK(c, entity.NewOverrideDraft())
}

// SubmissionState reports where the current override attempt stands
// @Summary Override submission state
// @Tags admin
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /admin/override/state [get]
func (h *AdminHandler) SubmissionState(c *gin.Context) {
	state, lastError := h.grantCmd.State()
	response.OK(c, gin.H{
		"state":      state,
		"last_error": lastError,
	})
}

// Override submits a manual access grant
// @Summary Grant subscription access manually
// @Tags admin
// @Accept json
// @Produce json
// @Param combined query bool false "Also unlock the bundled product tier"
// @Param request body entity.OverrideRequest true "Override form"
// @Success 201 {object} response.SuccessResponse{data=dto.OverrideResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/override [post]
func (h *AdminHandler) Override(c *gin.Context) {
	var req entity.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	combined := c.Query("combined") == "true"

	result, err := h.grantCmd.Execute(c.Request.Context(), &req, combined)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, result)
}
