package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zemuria/ops-console/internal/application/query"
	"github.com/zemuria/ops-console/internal/domain/valueobject"
	"github.com/zemuria/ops-console/internal/interfaces/http/response"
)

// DashboardHandler serves the console's read-only pages
type DashboardHandler struct {
	overviewQuery      *query.GetOverviewQuery
	financialsQuery    *query.GetFinancialsQuery
	userAnalyticsQuery *query.GetUserAnalyticsQuery
	systemInfraQuery   *query.GetSystemInfraQuery
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	overviewQuery *query.GetOverviewQuery,
	financialsQuery *query.GetFinancialsQuery,
	userAnalyticsQuery *query.GetUserAnalyticsQuery,
	systemInfraQuery *query.GetSystemInfraQuery,
) *DashboardHandler {
	return &DashboardHandler{
		overviewQuery:      overviewQuery,
		financialsQuery:    financialsQuery,
		userAnalyticsQuery: userAnalyticsQuery,
		systemInfraQuery:   systemInfraQuery,
	}
}

// periodParam reads the reporting window, defaulting to total
func periodParam(c *gin.Context) (valueobject.Period, bool) {
	raw := c.DefaultQuery("period", valueobject.PeriodTotal.String())
	period, err := valueobject.ParsePeriod(raw)
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return period, true
}

// Overview serves the landing dashboard
// @Summary Engagement overview
// @Tags dashboard
// @Produce json
// @Param period query string false "Reporting window" Enums(daily, weekly, monthly, total)
// @Success 200 {object} response.SuccessResponse{data=dto.OverviewView}
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	view, err := h.overviewQuery.Execute(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, view)
}

// Financials serves the reconciled revenue dashboard
// @Summary Revenue breakdown
// @Tags dashboard
// @Produce json
// @Param period query string false "Reporting window" Enums(daily, weekly, monthly, total)
// @Success 200 {object} response.SuccessResponse{data=dto.FinancialsView}
// @Router /dashboard/financials [get]
func (h *DashboardHandler) Financials(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	view, err := h.financialsQuery.Execute(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, view)
}

// UserAnalytics serves the user-segmentation dashboard
// @Summary User segmentation panels
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=dto.UserAnalyticsView}
// @Router /dashboard/users [get]
func (h *DashboardHandler) UserAnalytics(c *gin.Context) {
	view, err := h.userAnalyticsQuery.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, view)
}

// SystemInfra serves the infrastructure dashboard
// @Summary Storage and platform panels
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=dto.SystemInfraView}
// @Router /dashboard/system [get]
func (h *DashboardHandler) SystemInfra(c *gin.Context) {
	view, err := h.systemInfraQuery.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, view)
}
