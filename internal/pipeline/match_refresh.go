package pipeline

import (
	"context"
	"time"

	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"
	"inclusive-jobs/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	refreshPageSize = 500

	refreshLeaseKey = "match:refresh:lease"
	refreshLeaseTTL = 30 * time.Minute
)

// Locker hands out a lease shared by every instance, so only one of them
// refreshes at a time.
type Locker interface {
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type Regenerator interface {
	RegenerateForUser(ctx context.Context, userID uuid.UUID) (usecase.GenerateResult, error)
}

type RefreshSummary struct {
	Candidates int
	Failed     int
	Matches    int
	Duration   time.Duration
	// Skipped is set when another instance held the lease.
	Skipped bool
}

// MatchRefresh regenerates the snapshot of every candidate, a bounded number
// at a time.
type MatchRefresh struct {
	users   repository.UserQueryRepository
	matches Regenerator
	workers int
	logger  *zap.Logger

	lock     Locker
	leaseTTL time.Duration
}

func NewMatchRefresh(users repository.UserQueryRepository, matches Regenerator, workers int, log *zap.Logger) *MatchRefresh {
	if workers <= 0 {
		workers = 4
	}
	return &MatchRefresh{
		users:   users,
		matches: matches,
		workers: workers,
		logger:  logger.OrNop(log).Named("match_refresh"),
	}
}

// WithLock makes Run take the shared lease first. A ttl of zero uses the default.
func (p *MatchRefresh) WithLock(l Locker, ttl time.Duration) *MatchRefresh {
	if ttl <= 0 {
		ttl = refreshLeaseTTL
	}
	p.lock = l
	p.leaseTTL = ttl
	return p
}

func (p *MatchRefresh) Run(ctx context.Context) (RefreshSummary, error) {
	if p.lock != nil {
		ok, err := p.lock.SetIfNotExists(ctx, refreshLeaseKey, uuid.NewString(), p.leaseTTL)
		switch {
		case err != nil:
			// Without a lease store every instance refreshes on its own.
			p.logger.Warn("refresh lease unavailable, running unguarded", zap.Error(err))
		case !ok:
			p.logger.Info("match refresh skipped, lease held elsewhere")
			return RefreshSummary{Skipped: true}, nil
		default:
			defer func() {
				if err := p.lock.Delete(context.Background(), refreshLeaseKey); err != nil {
					p.logger.Warn("release refresh lease failed", zap.Error(err))
				}
			}()
		}
	}

	start := time.Now()
	p.logger.Info("match refresh started", zap.Int("workers", p.workers))

	pool := NewWorkerPool(p.workers, p.workers*2)
	results := pool.Run(ctx)

	var sum RefreshSummary
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			if r.Err != nil {
				sum.Failed++
				continue
			}
			sum.Matches += r.Matches
		}
	}()

	submitted := 0
	var listErr error
	for after := uuid.Nil; ; {
		ids, err := p.users.ListCandidateUserIDsAfter(ctx, after, refreshPageSize)
		if err != nil {
			listErr = err
			break
		}
		if len(ids) > 0 {
			after = ids[len(ids)-1]
		}
		for _, uid := range ids {
			submitted++
			pool.Submit(func(ctx context.Context) Result {
				res, err := p.matches.RegenerateForUser(ctx, uid)
				if err != nil {
					p.logger.Warn("regenerate failed", zap.Stringer("user_id", uid), zap.Error(err))
					return Result{UserID: uid, Err: err}
				}
				return Result{UserID: uid, Matches: len(res.Matches)}
			})
		}
		if len(ids) < refreshPageSize {
			break
		}
	}

	pool.Close()
	<-collected

	sum.Candidates = submitted
	sum.Duration = time.Since(start)

	if listErr != nil {
		p.logger.Error("match refresh aborted", zap.Error(listErr), zap.Int("submitted", submitted))
		return sum, listErr
	}
	p.logger.Info("match refresh finished",
		zap.Int("candidates", sum.Candidates),
		zap.Int("failed", sum.Failed),
		zap.Int("matches", sum.Matches),
		zap.Duration("duration", sum.Duration),
	)
	return sum, nil
}
