package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetProfile)
	r.Put("/me", h.UpdateProfile)
}

func (h *CandidateHandler) GetProfile(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProfile(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateProfileResponse(p))
}

func (h *CandidateHandler) UpdateProfile(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req dto.CandidateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := usecase.CandidateProfileInput{
		FullName:                 req.FullName,
		Skills:                   req.Skills,
		ExperienceLevel:          req.ExperienceLevel,
		WorkArrangement:          req.WorkArrangement,
		PreferredEmploymentTypes: req.PreferredEmploymentTypes,
	}
	if req.Accessibility != nil {
		in.Accessibility = &usecase.AccessibilityInput{
			Visual:    req.Accessibility.Visual,
			Hearing:   req.Accessibility.Hearing,
			Mobility:  req.Accessibility.Mobility,
			Cognitive: req.Accessibility.Cognitive,
		}
	}

	p, err := h.uc.UpdateProfile(c.Context(), caller, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "profile updated", dto.NewCandidateProfileResponse(p))
}
