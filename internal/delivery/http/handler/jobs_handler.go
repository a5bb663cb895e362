package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list usecase.JobListUsecase
	jobs usecase.JobUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, jobs usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{list: list, jobs: jobs}
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return err
	}

	items, pg, err := h.list.ListJobs(c.Context(), usecase.JobListParams{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListResponse{Items: out, Pagination: pg})
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.list.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.jobs.CreateJob(c.Context(), caller, usecase.CreateJobInput{
		Title:                 req.Title,
		Description:           req.Description,
		Location:              req.Location,
		EmploymentType:        req.EmploymentType,
		WorkArrangement:       req.WorkArrangement,
		ExperienceLevel:       req.ExperienceLevel,
		RequiredSkills:        req.RequiredSkills,
		AccessibilityFeatures: req.AccessibilityFeatures,
		ApplicationDeadline:   req.ApplicationDeadline,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "job created", dto.NewJobResponse(p))
}

func (h *JobsHandler) HandleApply(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	a, err := h.jobs.Apply(c.Context(), caller, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "application submitted", dto.NewApplicationResponse(a))
}
