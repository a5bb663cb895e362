package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobListParams struct {
	Query    string
	Location string
	Page     int
	Limit    int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Posting, Pagination, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type JobList struct {
	jobs   repository.JobRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewJobListUsecase(jobs repository.JobRepository, log *zap.Logger) *JobList {
	return &JobList{jobs: jobs, logger: logger.OrNop(log), now: func() time.Time { return time.Now().UTC() }}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Posting, Pagination, error) {
	if params.Limit < 0 || params.Page < 0 {
		return nil, Pagination{}, ErrInvalidInput
	}
	page, limit := normalizePage(params.Page, params.Limit, 20, 50)

	items, total, err := u.jobs.ListOpen(ctx, repository.JobListFilter{
		Query:    strings.TrimSpace(params.Query),
		Location: strings.TrimSpace(params.Location),
		Now:      u.now(),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		u.logger.Error("list jobs failed", zap.Error(err))
		return nil, Pagination{}, ErrInternal
	}
	return items, newPagination(page, limit, total), nil
}

func (u *JobList) GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	if id == uuid.Nil {
		return job.Posting{}, ErrJobNotFound
	}
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		u.logger.Error("get job failed", zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	return p, nil
}
