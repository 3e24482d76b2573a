package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

// MinPhoneDigits is the number of digits a phone-shaped contact needs
const MinPhoneDigits = 10

// OTPLength is the exact length of a one-time code
const OTPLength = 6

const phoneSeparators = " -().+"

// Validator wraps go-playground/validator with the onboarding form rules
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names so messages line up with the submitted fields
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerRules()
	return v
}

// Validate checks s against its struct tags
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return IsContact(fl.Field().String())
	})

	v.validate.RegisterValidation("otp_code", func(fl validator.FieldLevel) bool {
		return IsOTPCode(fl.Field().String())
	})

	v.validate.RegisterValidation("profile_type", func(fl validator.FieldLevel) bool {
		return models.ProfileType(fl.Field().String()).IsValid()
	})

	v.validate.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		return models.Section(fl.Field().String()).IsValid()
	})
}

// IsContact reports whether s looks like an email (contains @) or a phone
// number (at least MinPhoneDigits digits once separators are removed).
func IsContact(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.Contains(s, "@") {
		return true
	}

	digits := 0
	for _, r := range s {
		switch {
		case strings.ContainsRune(phoneSeparators, r):
			continue
		case r >= '0' && r <= '9':
			digits++
		default:
			return false
		}
	}
	return digits >= MinPhoneDigits
}

// IsOTPCode reports whether s is exactly OTPLength ASCII digits
func IsOTPCode(s string) bool {
	if len(s) != OTPLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
