package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) HandleRecommended(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.GetRecommendations(c.Context(), caller, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RecommendedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendedJobResponse{
			Job:        dto.NewJobResponse(it.Job),
			MatchScore: it.Result.Overall,
			Breakdown:  it.Result.Breakdown,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobRecommendationHandler) HandleRankCandidates(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.RankCandidates(c.Context(), caller, id, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RankedCandidateResponse, 0, len(items))
	for _, it := range items {
		skills := it.Profile.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, dto.RankedCandidateResponse{
			CandidateID:   it.Profile.ID,
			FullName:      it.Profile.FullName,
			Skills:        skills,
			Accessibility: dto.NewAccessibilityNeeds(it.Profile.Accessibility),
			MatchScore:    it.Result.Overall,
			Breakdown:     it.Result.Breakdown,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
