package models

type OnboardingStep string

const (
	StepLogin     OnboardingStep = "login"
	StepOTP       OnboardingStep = "otp"
	StepProfile   OnboardingStep = "profile"
	StepDomain    OnboardingStep = "domain"
	StepDashboard OnboardingStep = "dashboard"
)

var stepOrder = []OnboardingStep{StepLogin, StepOTP, StepProfile, StepDomain, StepDashboard}

// OnboardingSteps returns the steps in their total order
func OnboardingSteps() []OnboardingStep {
	out := make([]OnboardingStep, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// Index returns the position of s in the onboarding order, or -1
func (s OnboardingStep) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

func (s OnboardingStep) IsTerminal() bool {
	return s == StepDashboard
}
