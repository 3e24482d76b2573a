package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single field-level failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// ForField returns the first message reported for field
func (ve ValidationErrors) ForField(field string) (string, bool) {
	for _, e := range ve {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// ToValidationErrors converts go-playground errors into ValidationErrors.
// Errors of any other kind are reported against a pseudo-field.
func ToValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "invalid"}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "contact":
		return "Enter a valid email address or a phone number with at least 10 digits"
	case "otp_code":
		return "Enter the complete 6-digit code"
	case "profile_type":
		return "Choose student, professional or industry"
	case "section":
		return "Unknown dashboard section"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

var fieldLabels = map[string]string{
	"name":         "Name",
	"contact":      "Email or phone",
	"code":         "Verification code",
	"profile_type": "Profile type",
	"domain":       "Domain",
	"section":      "Section",
	"reward_id":    "Reward",
}
