package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCaller       = errors.New("invalid caller")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrCandidateNotFound = errors.New("candidate not found")
	ErrEmployerNotFound  = errors.New("employer not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrMatchNotFound     = errors.New("match not found")

	ErrAlreadyApplied       = errors.New("already applied to this job")
	ErrApplicationClosed    = errors.New("application deadline has passed")
	ErrAlreadyReviewed      = errors.New("employer already reviewed")
	ErrStoreUnavailable     = errors.New("draft store unavailable")
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")
)
