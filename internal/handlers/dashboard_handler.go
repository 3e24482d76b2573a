package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
	report  services.ReportService
}

func NewDashboardHandler(service services.DashboardService, report services.ReportService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		report:      report,
	}
}

// ===== DASHBOARD ENDPOINTS =====

// GetNavigation returns the tabs and header counters
// @Summary Get dashboard navigation
// @Tags dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.NavigationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Onboarding not finished"
// @Router /sessions/{id}/dashboard/navigation [get]
func (h *DashboardHandler) GetNavigation(c *gin.Context) {
	nav, err := h.service.Navigation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nav)
}

// SwitchSection is the navigation tab action
// @Summary Switch dashboard section
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body validator.SectionRequest true "Section"
// @Success 200 {object} models.DashboardState
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/dashboard/section [put]
func (h *DashboardHandler) SwitchSection(c *gin.Context) {
	var req validator.SectionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	state, err := h.service.SwitchSection(c.Request.Context(), c.Param("id"), req.Section)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// OpenCoins is the header balance action
func (h *DashboardHandler) OpenCoins(c *gin.Context) {
	state, err := h.service.OpenCoins(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetView renders the active section
// @Summary Get the active section view
// @Tags dashboard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SectionView
// @Router /sessions/{id}/dashboard/view [get]
func (h *DashboardHandler) GetView(c *gin.Context) {
	view, err := h.service.CurrentView(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RedeemReward
// @Summary Spend coins on a reward
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body validator.RedeemRequest true "Reward"
// @Success 200 {object} services.RedeemResponse
// @Failure 402 {object} ErrorResponse "Not enough coins"
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/dashboard/coins/redeem [post]
func (h *DashboardHandler) RedeemReward(c *gin.Context) {
	var req validator.RedeemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.RedeemReward(c.Request.Context(), c.Param("id"), req.RewardID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Reward redeemed", "session_id", c.Param("id"), "reward_id", req.RewardID)
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) ClearNotifications(c *gin.Context) {
	state, err := h.service.ClearNotifications(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ExportReport downloads the progress workbook
// @Summary Export progress as XLSX
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session ID"
// @Success 200 {file} binary
// @Router /sessions/{id}/dashboard/report.xlsx [get]
func (h *DashboardHandler) ExportReport(c *gin.Context) {
	id := c.Param("id")
	raw, err := h.report.ExportProgress(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="progress-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, raw)
}
