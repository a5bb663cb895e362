package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MatchNotifier interface {
	MatchesGenerated(userID uuid.UUID, total int, at time.Time)
}

type GeneratedMatch struct {
	Result matching.MatchResult
	Job    job.Posting
}

type GenerateResult struct {
	Matches           []GeneratedMatch
	TotalJobsAnalyzed int
	GeneratedAt       time.Time
}

type SnapshotQuery struct {
	Page     int
	Limit    int
	MinScore int
}

type SnapshotPage struct {
	Items      []repository.MatchSnapshotRow
	Pagination Pagination
}

type MatchDetail struct {
	Match    repository.MatchSnapshotRow
	Analysis matching.Analysis
}

type MatchStats struct {
	TotalMatches      int                      `json:"totalMatches"`
	AverageScore      float64                  `json:"averageScore"`
	ScoreDistribution []repository.ScoreBucket `json:"scoreDistribution"`
	LastGenerated     *time.Time               `json:"lastGenerated"`
}

type MatchUsecase interface {
	GenerateMatches(ctx context.Context, caller Caller) (GenerateResult, error)
	GetSnapshot(ctx context.Context, caller Caller, q SnapshotQuery) (SnapshotPage, error)
	GetMatch(ctx context.Context, caller Caller, matchID uuid.UUID) (MatchDetail, error)
	GetStats(ctx context.Context, caller Caller) (MatchStats, error)
}

type MatchOptions struct {
	TopN          int
	StatsCacheTTL time.Duration
}

type Matching struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	results    repository.MatchResultRepository
	cache      Cache
	notifier   MatchNotifier
	logger     *zap.Logger
	opts       MatchOptions
	now        func() time.Time
	newID      func() uuid.UUID
}

func NewMatchUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	results repository.MatchResultRepository,
	cache Cache,
	notifier MatchNotifier,
	log *zap.Logger,
	opts MatchOptions,
) *Matching {
	if opts.TopN <= 0 {
		opts.TopN = matching.DefaultTopN
	}
	return &Matching{
		candidates: candidates,
		jobs:       jobs,
		results:    results,
		cache:      cache,
		notifier:   notifier,
		logger:     logger.OrNop(log),
		opts:       opts,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.New,
	}
}

// Cached stats live under the candidate's current snapshot generation, so an
// entry computed before a regeneration is never read after it.
func statsGenerationKey(candidateID uuid.UUID) string {
	return "match:stats:gen:" + candidateID.String()
}

func statsCacheKey(candidateID uuid.UUID, generation string) string {
	return "match:stats:" + candidateID.String() + ":" + generation
}

func (u *Matching) statsGeneration(ctx context.Context, candidateID uuid.UUID) (string, bool) {
	var gen string
	ok, err := u.cache.GetJSON(ctx, statsGenerationKey(candidateID), &gen)
	if err != nil {
		return "", false
	}
	if !ok || gen == "" {
		gen = "0"
	}
	return gen, true
}

func (u *Matching) bumpStatsGeneration(ctx context.Context, candidateID uuid.UUID, at time.Time) {
	old, ok := u.statsGeneration(ctx, candidateID)
	next := strconv.FormatInt(at.UnixNano(), 10)
	if next == old {
		next += "-" + u.newID().String()
	}
	if err := u.cache.SetJSON(ctx, statsGenerationKey(candidateID), next, 0); err != nil {
		u.logger.Warn("stats generation bump failed", zap.Error(err))
	}
	if !ok {
		return
	}
	if err := u.cache.Delete(ctx, statsCacheKey(candidateID, old)); err != nil {
		u.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

// GenerateMatches recomputes the caller's snapshot against every open job and
// replaces the stored one.
func (u *Matching) GenerateMatches(ctx context.Context, caller Caller) (GenerateResult, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return GenerateResult{}, err
	}
	return u.generate(ctx, caller.UserID)
}

// RegenerateForUser runs generation on behalf of a candidate without a
// request context, as the scheduled refresh does.
func (u *Matching) RegenerateForUser(ctx context.Context, userID uuid.UUID) (GenerateResult, error) {
	return u.generate(ctx, userID)
}

func (u *Matching) generate(ctx context.Context, userID uuid.UUID) (GenerateResult, error) {
	now := u.now()

	var (
		profile candidate.Profile
		open    []job.Posting
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.candidates.GetByUserID(gctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		js, err := u.jobs.ListActiveForMatching(gctx, now)
		if err != nil {
			return err
		}
		open = js
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return GenerateResult{}, ErrCandidateNotFound
		}
		u.logger.Error("load matching inputs failed", zap.Stringer("user_id", userID), zap.Error(err))
		return GenerateResult{}, ErrInternal
	}

	byID := make(map[uuid.UUID]job.Posting, len(open))
	inputs := make([]matching.Job, 0, len(open))
	for _, p := range open {
		byID[p.ID] = p
		inputs = append(inputs, p.MatchingJob())
	}

	ranked := matching.Rank(profile.MatchingCandidate(), inputs, u.opts.TopN, now)
	for i := range ranked {
		ranked[i].ID = u.newID()
	}

	if err := u.results.ReplaceForCandidate(ctx, profile.ID, now, ranked); err != nil {
		u.logger.Error("replace match snapshot failed", zap.Stringer("candidate_id", profile.ID), zap.Error(err))
		return GenerateResult{}, ErrInternal
	}

	if u.cache != nil {
		u.bumpStatsGeneration(ctx, profile.ID, now)
	}
	if u.notifier != nil {
		u.notifier.MatchesGenerated(userID, len(ranked), now)
	}

	out := GenerateResult{
		Matches:           make([]GeneratedMatch, 0, len(ranked)),
		TotalJobsAnalyzed: len(open),
		GeneratedAt:       now,
	}
	for _, r := range ranked {
		out.Matches = append(out.Matches, GeneratedMatch{Result: r, Job: byID[r.JobID]})
	}

	u.logger.Info("matches generated",
		zap.Stringer("candidate_id", profile.ID),
		zap.Int("jobs_analyzed", len(open)),
		zap.Int("matches", len(ranked)),
	)
	return out, nil
}

func (u *Matching) GetSnapshot(ctx context.Context, caller Caller, q SnapshotQuery) (SnapshotPage, error) {
	profile, err := u.callerProfile(ctx, caller)
	if err != nil {
		return SnapshotPage{}, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 10, 100)
	minScore := q.MinScore
	if minScore < 0 {
		minScore = 0
	}
	if minScore > 100 {
		minScore = 100
	}

	rows, total, err := u.results.ListByCandidate(ctx, profile.ID, repository.SnapshotFilter{
		MinScore: minScore,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		u.logger.Error("list match snapshot failed", zap.Error(err))
		return SnapshotPage{}, ErrInternal
	}
	return SnapshotPage{Items: rows, Pagination: newPagination(page, limit, total)}, nil
}

func (u *Matching) GetMatch(ctx context.Context, caller Caller, matchID uuid.UUID) (MatchDetail, error) {
	profile, err := u.callerProfile(ctx, caller)
	if err != nil {
		return MatchDetail{}, err
	}
	if matchID == uuid.Nil {
		return MatchDetail{}, ErrMatchNotFound
	}

	row, err := u.results.GetByID(ctx, profile.ID, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return MatchDetail{}, ErrMatchNotFound
		}
		u.logger.Error("get match failed", zap.Error(err))
		return MatchDetail{}, ErrInternal
	}
	return MatchDetail{Match: row, Analysis: matching.Analyze(row.Overall, row.Breakdown)}, nil
}

func (u *Matching) GetStats(ctx context.Context, caller Caller) (MatchStats, error) {
	profile, err := u.callerProfile(ctx, caller)
	if err != nil {
		return MatchStats{}, err
	}

	var key string
	if u.cache != nil {
		if gen, ok := u.statsGeneration(ctx, profile.ID); ok {
			key = statsCacheKey(profile.ID, gen)
			var cached MatchStats
			if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
				return cached, nil
			}
		}
	}

	st, err := u.results.Stats(ctx, profile.ID)
	if err != nil {
		u.logger.Error("match stats failed", zap.Error(err))
		return MatchStats{}, ErrInternal
	}

	out := MatchStats{
		TotalMatches:      st.TotalMatches,
		AverageScore:      math.Round(st.AverageScore*10) / 10,
		ScoreDistribution: st.Distribution,
		LastGenerated:     st.LastGenerated,
	}
	if out.ScoreDistribution == nil {
		out.ScoreDistribution = []repository.ScoreBucket{}
	}

	if key != "" {
		if err := u.cache.SetJSON(ctx, key, out, u.opts.StatsCacheTTL); err != nil {
			u.logger.Debug("stats cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (u *Matching) callerProfile(ctx context.Context, caller Caller) (candidate.Profile, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return candidate.Profile{}, err
	}
	p, err := u.candidates.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		u.logger.Error("load candidate failed", zap.Error(err))
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}
