package validator

import "github.com/H4CK3R01P/CodeEX-sub001/internal/models"

type LoginRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Contact string `json:"contact" validate:"required,contact"`
}

// OTPRequest carries the one-time code typed or pasted on the verify screen
type OTPRequest struct {
	Code string `json:"code" validate:"required,otp_code"`
}

type ProfileRequest struct {
	ProfileType models.ProfileType `json:"profile_type" validate:"required,profile_type"`
}

type DomainRequest struct {
	Domain string `json:"domain" validate:"required,max=64"`
}

type SectionRequest struct {
	Section models.Section `json:"section" validate:"required,section"`
}

type RedeemRequest struct {
	RewardID string `json:"reward_id" validate:"required"`
}
