package usecase

import (
	"context"
	"errors"
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecommendedJob struct {
	Job    job.Posting
	Result matching.RecommendationResult
}

type RankedCandidate struct {
	Profile candidate.Profile
	Result  matching.RecommendationResult
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, caller Caller, limit int) ([]RecommendedJob, error)
	RankCandidates(ctx context.Context, caller Caller, jobID uuid.UUID, limit int) ([]RankedCandidate, error)
}

type JobRecommendation struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	employers  repository.EmployerRepository
	logger     *zap.Logger
	now        func() time.Time
	pageSize   int
}

func NewJobRecommendationUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	employers repository.EmployerRepository,
	log *zap.Logger,
) *JobRecommendation {
	return &JobRecommendation{
		jobs:       jobs,
		candidates: candidates,
		employers:  employers,
		logger:     logger.OrNop(log),
		now:        func() time.Time { return time.Now().UTC() },
		pageSize:   repository.DefaultProfilePageSize,
	}
}

// GetRecommendations ranks open jobs for the calling candidate.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, caller Caller, limit int) ([]RecommendedJob, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return nil, err
	}
	if limit > 50 {
		limit = 50
	}

	profile, err := u.candidates.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		u.logger.Error("load candidate failed", zap.Error(err))
		return nil, ErrInternal
	}

	now := u.now()
	open, err := u.jobs.ListActiveForMatching(ctx, now)
	if err != nil {
		u.logger.Error("list active jobs failed", zap.Error(err))
		return nil, ErrInternal
	}

	byID := make(map[uuid.UUID]job.Posting, len(open))
	inputs := make([]matching.Job, 0, len(open))
	for _, p := range open {
		byID[p.ID] = p
		inputs = append(inputs, p.MatchingJob())
	}

	ranked := matching.RankRecommendedJobs(profile.MatchingCandidate(), inputs, limit, now)
	out := make([]RecommendedJob, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RecommendedJob{Job: byID[r.Job.ID], Result: r.Result})
	}
	return out, nil
}

// RankCandidates orders every candidate for a job owned by the calling employer.
func (u *JobRecommendation) RankCandidates(ctx context.Context, caller Caller, jobID uuid.UUID, limit int) ([]RankedCandidate, error) {
	if err := caller.require(user.RoleEmployer); err != nil {
		return nil, err
	}

	employer, err := u.employers.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return nil, ErrEmployerNotFound
		}
		u.logger.Error("load employer failed", zap.Error(err))
		return nil, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		u.logger.Error("load job failed", zap.Error(err))
		return nil, ErrInternal
	}
	if posting.EmployerID != employer.ID {
		return nil, ErrInvalidCaller
	}

	profiles, err := u.allProfiles(ctx)
	if err != nil {
		u.logger.Error("list candidates failed", zap.Error(err))
		return nil, ErrInternal
	}

	byID := make(map[uuid.UUID]candidate.Profile, len(profiles))
	inputs := make([]matching.Candidate, 0, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
		inputs = append(inputs, p.MatchingCandidate())
	}

	ranked := matching.RankCandidates(posting.MatchingJob(), inputs, limit)
	out := make([]RankedCandidate, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RankedCandidate{Profile: byID[r.CandidateID], Result: r.Result})
	}
	return out, nil
}

func (u *JobRecommendation) allProfiles(ctx context.Context) ([]candidate.Profile, error) {
	var out []candidate.Profile
	for after := uuid.Nil; ; {
		page, err := u.candidates.ListProfilesAfter(ctx, after, u.pageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < u.pageSize {
			return out, nil
		}
		after = page[len(page)-1].ID
	}
}
