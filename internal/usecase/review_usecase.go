package usecase

import (
	"context"
	"errors"
	"strings"

	"inclusive-jobs/internal/domain/review"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewUsecase interface {
	Create(ctx context.Context, caller Caller, employerID uuid.UUID, rating int, comment string) (review.Review, review.Summary, error)
	List(ctx context.Context, employerID uuid.UUID, page, limit int) ([]review.Review, Pagination, error)
}

type Reviews struct {
	repo      repository.ReviewRepository
	employers repository.EmployerRepository
	logger    *zap.Logger
}

func NewReviewUsecase(repo repository.ReviewRepository, employers repository.EmployerRepository, log *zap.Logger) *Reviews {
	return &Reviews{repo: repo, employers: employers, logger: logger.OrNop(log)}
}

func (u *Reviews) Create(ctx context.Context, caller Caller, employerID uuid.UUID, rating int, comment string) (review.Review, review.Summary, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return review.Review{}, review.Summary{}, err
	}
	if employerID == uuid.Nil || !review.ValidRating(rating) {
		return review.Review{}, review.Summary{}, ErrInvalidInput
	}

	rv, sum, err := u.repo.Create(ctx, review.Review{
		EmployerID: employerID,
		ReviewerID: caller.UserID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployerNotFound):
			return review.Review{}, review.Summary{}, ErrEmployerNotFound
		case errors.Is(err, repository.ErrAlreadyReviewed):
			return review.Review{}, review.Summary{}, ErrAlreadyReviewed
		}
		u.logger.Error("create review failed", zap.Error(err))
		return review.Review{}, review.Summary{}, ErrInternal
	}
	return rv, sum, nil
}

func (u *Reviews) List(ctx context.Context, employerID uuid.UUID, page, limit int) ([]review.Review, Pagination, error) {
	if employerID == uuid.Nil {
		return nil, Pagination{}, ErrEmployerNotFound
	}
	if _, err := u.employers.GetByID(ctx, employerID); err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return nil, Pagination{}, ErrEmployerNotFound
		}
		u.logger.Error("load employer failed", zap.Error(err))
		return nil, Pagination{}, ErrInternal
	}

	page, limit = normalizePage(page, limit, 20, 100)
	items, total, err := u.repo.ListByEmployer(ctx, employerID, limit, (page-1)*limit)
	if err != nil {
		u.logger.Error("list reviews failed", zap.Error(err))
		return nil, Pagination{}, ErrInternal
	}
	return items, newPagination(page, limit, total), nil
}
