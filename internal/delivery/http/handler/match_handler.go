package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/repository"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) HandleGenerate(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	res, err := h.uc.GenerateMatches(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}

	items := make([]dto.MatchItem, 0, len(res.Matches))
	for _, m := range res.Matches {
		items = append(items, dto.NewMatchItem(repository.MatchSnapshotRow{
			ID:              m.Result.ID,
			CandidateID:     m.Result.CandidateID,
			JobID:           m.Result.JobID,
			Overall:         m.Result.Overall,
			Breakdown:       m.Result.Breakdown,
			ComputedAt:      m.Result.ComputedAt,
			JobTitle:        m.Job.Title,
			CompanyName:     m.Job.CompanyName,
			Location:        m.Job.Location,
			WorkArrangement: string(m.Job.WorkArrangement),
			Deadline:        m.Job.ApplicationDeadline,
		}))
	}

	return response.Success(c, fiber.StatusOK, "matches generated", dto.GenerateMatchesResponse{
		Matches:           items,
		TotalJobsAnalyzed: res.TotalJobsAnalyzed,
		GeneratedAt:       res.GeneratedAt,
	})
}

func (h *MatchHandler) HandleMine(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		return err
	}
	minScore, err := queryInt(c, "minScore", 0)
	if err != nil {
		return err
	}

	res, err := h.uc.GetSnapshot(c.Context(), caller, usecase.SnapshotQuery{Page: page, Limit: limit, MinScore: minScore})
	if err != nil {
		return mapUsecaseError(err)
	}

	items := make([]dto.MatchItem, 0, len(res.Items))
	for _, r := range res.Items {
		items = append(items, dto.NewMatchItem(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchListResponse{Matches: items, Pagination: res.Pagination})
}

func (h *MatchHandler) HandleGet(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "matchId")
	if err != nil {
		return err
	}

	res, err := h.uc.GetMatch(c.Context(), caller, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchDetailResponse{
		MatchItem: dto.NewMatchItem(res.Match),
		Analysis:  res.Analysis,
	})
}

func (h *MatchHandler) HandleStats(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	st, err := h.uc.GetStats(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
