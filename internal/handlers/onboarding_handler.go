package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
)

type OnboardingHandler struct {
	BaseHandler
	service services.OnboardingService
}

func NewOnboardingHandler(service services.OnboardingService, logger utils.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== ONBOARDING ENDPOINTS =====

// StartSession opens a new onboarding session at the login step
// @Summary Start onboarding
// @Tags onboarding
// @Produce json
// @Success 201 {object} models.Session
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	session, err := h.service.Start(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Session started", "session_id", session.ID)
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current step and collected data
// @Summary Get session
// @Tags onboarding
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Session
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *OnboardingHandler) GetSession(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitLogin
// @Summary Submit name and contact
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body services.LoginRequest true "Login form"
// @Success 200 {object} models.Session
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/login [post]
func (h *OnboardingHandler) SubmitLogin(c *gin.Context) {
	var req services.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.service.SubmitLogin(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// VerifyOTP
// @Summary Verify the one-time code
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body services.OTPRequest true "Code"
// @Success 200 {object} models.Session
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/otp/verify [post]
func (h *OnboardingHandler) VerifyOTP(c *gin.Context) {
	var req services.OTPRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.service.VerifyOTP(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *OnboardingHandler) ResendOTP(c *gin.Context) {
	resp, err := h.service.ResendOTP(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) BackToLogin(c *gin.Context) {
	session, err := h.service.BackToLogin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectProfile
// @Summary Choose student, professional or industry
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body services.ProfileRequest true "Profile"
// @Success 200 {object} models.Session
// @Router /sessions/{id}/profile [post]
func (h *OnboardingHandler) SelectProfile(c *gin.Context) {
	var req services.ProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.service.SelectProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDomain completes onboarding
// @Summary Choose a learning domain
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body services.DomainRequest true "Domain"
// @Success 200 {object} models.Session
// @Router /sessions/{id}/domain [post]
func (h *OnboardingHandler) SelectDomain(c *gin.Context) {
	var req services.DomainRequest
	if !h.bindJSON(c, &req) {
		return
	}

	session, err := h.service.SelectDomain(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Onboarding completed", "session_id", session.ID, "domain", session.User.DomainID())
	c.JSON(http.StatusOK, session)
}

func (h *OnboardingHandler) BackToProfile(c *gin.Context) {
	session, err := h.service.BackToProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
