package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Message  string                     `json:"message"`
	Details  interface{}                `json:"details,omitempty"`
	Errors   validator.ValidationErrors `json:"errors,omitempty"`
	Recovery string                     `json:"recovery,omitempty"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs through the request-scoped logger
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.GetLogger(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.GetLogger(c, h.logger).Error(msg, args...)
}

// bindJSON decodes the body into req, answering 400 when it is not JSON
func (h *BaseHandler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return false
	}
	return true
}

func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var stepErr *services.StepError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
			Details: map[string]interface{}{"step": stepErr.Step},
			Errors:  stepErr.Errors,
		})
		return
	}

	var transitionErr *services.TransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Action not available at this step",
			Details: map[string]interface{}{
				"step":   transitionErr.From,
				"action": transitionErr.Action,
			},
		})
		return
	}

	var coinsErr *services.InsufficientCoinsError
	if errors.As(err, &coinsErr) {
		c.JSON(http.StatusPaymentRequired, ErrorResponse{
			Message: "Not enough coins",
			Details: map[string]interface{}{
				"reward_id": coinsErr.RewardID,
				"cost":      coinsErr.Cost,
				"balance":   coinsErr.Balance,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message:  "Session not found",
			Recovery: "restart",
		})
	case errors.Is(err, services.ErrNotOnboarded):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Finish onboarding to open the dashboard",
		})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Action not available at this step",
		})
	case errors.Is(err, services.ErrRewardNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Reward not found",
		})
	case errors.Is(err, services.ErrInsufficientCoins):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{
			Message: "Not enough coins",
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
