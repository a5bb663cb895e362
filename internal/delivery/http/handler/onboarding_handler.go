package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OnboardingHandler struct {
	uc usecase.OnboardingUsecase
}

func NewOnboardingHandler(uc usecase.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetDraft)
	r.Post("/complete", h.Complete)
	r.Put("/:step", h.SaveStep)
}

func (h *OnboardingHandler) GetDraft(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	d, err := h.uc.GetDraft(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOnboardingDraftResponse(d))
}

// SaveStep stores the raw step body; the draft decodes and validates it per step.
func (h *OnboardingHandler) SaveStep(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	body := append([]byte(nil), c.Body()...)
	d, err := h.uc.SaveStep(c.Context(), caller, c.Params("step"), body)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "step saved", dto.NewOnboardingDraftResponse(d))
}

func (h *OnboardingHandler) Complete(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	p, err := h.uc.Complete(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "onboarding completed", dto.NewCandidateProfileResponse(p))
}
