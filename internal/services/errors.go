package services

import (
	"errors"
	"fmt"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// Common service errors
var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("invalid onboarding transition")
	ErrNotOnboarded      = errors.New("onboarding not completed")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrRewardNotFound    = errors.New("reward not found")
)

// StepError reports field-level failures on an onboarding screen. The
// session is left exactly as it was.
type StepError struct {
	Step   models.OnboardingStep
	Errors validator.ValidationErrors
}

func NewStepError(step models.OnboardingStep, errs validator.ValidationErrors) *StepError {
	return &StepError{Step: step, Errors: errs}
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step: %s", e.Step, e.Errors.Error())
}

func (e *StepError) Unwrap() error {
	return ErrValidationFailed
}

// TransitionError is returned when an action is not an outgoing edge of
// the session's current step
type TransitionError struct {
	From   models.OnboardingStep
	Action string
}

func NewTransitionError(from models.OnboardingStep, action string) *TransitionError {
	return &TransitionError{From: from, Action: action}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from step %q", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientCoinsError carries the balance and price of a failed redemption
type InsufficientCoinsError struct {
	RewardID string
	Cost     int
	Balance  int
}

func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("reward %s costs %d coins, balance is %d", e.RewardID, e.Cost, e.Balance)
}

func (e *InsufficientCoinsError) Unwrap() error {
	return ErrInsufficientCoins
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
