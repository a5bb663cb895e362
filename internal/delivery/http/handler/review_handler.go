package handler

import (
	"inclusive-jobs/internal/delivery/http/dto"
	"inclusive-jobs/internal/pkg/response"
	"inclusive-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) HandleCreate(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	employerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rv, sum, err := h.uc.Create(c.Context(), caller, employerID, req.Rating, req.Comment)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "review created", dto.CreateReviewResponse{Review: rv, Summary: sum})
}

func (h *ReviewHandler) HandleList(c fiber.Ctx) error {
	employerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return err
	}

	items, pg, err := h.uc.List(c.Context(), employerID, page, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ReviewListResponse{Items: items, Pagination: pg})
}
