package services

import (
	"context"
	"fmt"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// OTPResendCooldown is the number of seconds the client waits before it
// offers to resend the code
const OTPResendCooldown = 30

// OTPVerifier decides whether a well-formed code is accepted for contact
type OTPVerifier interface {
	Verify(ctx context.Context, contact, code string) (bool, error)
}

// DemoOTPVerifier accepts every 6-digit code. There is no delivery channel
// behind it, so it is only suitable for demo deployments.
type DemoOTPVerifier struct{}

func (DemoOTPVerifier) Verify(_ context.Context, _ string, code string) (bool, error) {
	return validator.IsOTPCode(code), nil
}

// NewOTPVerifier returns the verifier for the configured mode
func NewOTPVerifier(mode string) (OTPVerifier, error) {
	switch mode {
	case "", "demo":
		return DemoOTPVerifier{}, nil
	default:
		return nil, fmt.Errorf("unsupported otp mode %q", mode)
	}
}
