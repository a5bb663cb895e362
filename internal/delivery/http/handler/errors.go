package handler

import (
	"errors"

	"inclusive-jobs/internal/delivery/http/middleware"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the shared usecase sentinels. Handlers check
// their own specific errors first and fall back to this.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidCaller):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	case errors.Is(err, usecase.ErrEmployerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employer not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrAlreadyReviewed):
		return middleware.NewAppError(fiber.StatusConflict, "Employer already reviewed", nil, err)
	case errors.Is(err, usecase.ErrApplicationClosed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Application deadline has passed", nil, err)
	case errors.Is(err, usecase.ErrOnboardingIncomplete):
		return middleware.NewAppError(fiber.StatusBadRequest, "Onboarding incomplete", nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
