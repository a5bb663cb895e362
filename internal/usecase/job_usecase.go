package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateJobInput struct {
	Title                 string
	Description           string
	Location              string
	EmploymentType        string
	WorkArrangement       string
	ExperienceLevel       string
	RequiredSkills        []string
	AccessibilityFeatures []string
	ApplicationDeadline   time.Time
}

type JobUsecase interface {
	CreateJob(ctx context.Context, caller Caller, in CreateJobInput) (job.Posting, error)
	Apply(ctx context.Context, caller Caller, jobID uuid.UUID) (repository.Application, error)
}

type Jobs struct {
	jobs         repository.JobRepository
	employers    repository.EmployerRepository
	candidates   repository.CandidateRepository
	applications repository.ApplicationRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewJobUsecase(
	jobs repository.JobRepository,
	employers repository.EmployerRepository,
	candidates repository.CandidateRepository,
	applications repository.ApplicationRepository,
	log *zap.Logger,
) *Jobs {
	return &Jobs{
		jobs:         jobs,
		employers:    employers,
		candidates:   candidates,
		applications: applications,
		logger:       logger.OrNop(log),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *Jobs) CreateJob(ctx context.Context, caller Caller, in CreateJobInput) (job.Posting, error) {
	if err := caller.require(user.RoleEmployer); err != nil {
		return job.Posting{}, err
	}

	p := job.Posting{
		Title:                 strings.TrimSpace(in.Title),
		Description:           strings.TrimSpace(in.Description),
		Location:              strings.TrimSpace(in.Location),
		RequiredSkills:        matching.NormalizeTags(in.RequiredSkills),
		AccessibilityFeatures: matching.NormalizeTags(in.AccessibilityFeatures),
		ApplicationDeadline:   in.ApplicationDeadline.UTC(),
	}
	if p.Title == "" || !p.ApplicationDeadline.After(u.now()) {
		return job.Posting{}, ErrInvalidInput
	}

	var ok bool
	if p.EmploymentType, ok = matching.ParseEmploymentType(in.EmploymentType); !ok {
		return job.Posting{}, ErrInvalidInput
	}
	if p.WorkArrangement, ok = matching.ParseWorkArrangement(in.WorkArrangement); !ok {
		return job.Posting{}, ErrInvalidInput
	}
	if p.ExperienceLevel, ok = matching.ParseExperienceLevel(in.ExperienceLevel); !ok {
		return job.Posting{}, ErrInvalidInput
	}

	employer, err := u.employers.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return job.Posting{}, ErrEmployerNotFound
		}
		u.logger.Error("load employer failed", zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	p.EmployerID = employer.ID

	created, err := u.jobs.Create(ctx, p)
	if err != nil {
		u.logger.Error("create job failed", zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	u.logger.Info("job created", zap.Stringer("job_id", created.ID), zap.Stringer("employer_id", employer.ID))
	return created, nil
}

// Apply records the calling candidate's application to an open job.
func (u *Jobs) Apply(ctx context.Context, caller Caller, jobID uuid.UUID) (repository.Application, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return repository.Application{}, err
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Application{}, ErrJobNotFound
		}
		u.logger.Error("load job failed", zap.Error(err))
		return repository.Application{}, ErrInternal
	}
	if !posting.Open(u.now()) {
		return repository.Application{}, ErrApplicationClosed
	}

	profile, err := u.candidates.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return repository.Application{}, ErrCandidateNotFound
		}
		u.logger.Error("load candidate failed", zap.Error(err))
		return repository.Application{}, ErrInternal
	}

	app, err := u.applications.Create(ctx, posting.ID, profile.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyApplied):
			return repository.Application{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrJobNotFound):
			return repository.Application{}, ErrJobNotFound
		}
		u.logger.Error("create application failed", zap.Error(err))
		return repository.Application{}, ErrInternal
	}
	return app, nil
}
