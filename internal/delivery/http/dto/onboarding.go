package dto

import "inclusive-jobs/internal/domain/onboarding"

type OnboardingDraftResponse struct {
	Draft          onboarding.Draft  `json:"draft"`
	CompletedSteps []onboarding.Step `json:"completed_steps"`
	MissingSteps   []onboarding.Step `json:"missing_steps"`
}

func NewOnboardingDraftResponse(d onboarding.Draft) OnboardingDraftResponse {
	return OnboardingDraftResponse{
		Draft:          d,
		CompletedSteps: nonNilSteps(d.CompletedSteps()),
		MissingSteps:   nonNilSteps(d.MissingSteps()),
	}
}

func nonNilSteps(s []onboarding.Step) []onboarding.Step {
	if s == nil {
		return []onboarding.Step{}
	}
	return s
}
