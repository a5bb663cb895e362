package usecase

import (
	"context"
	"errors"
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/onboarding"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftStore persists onboarding drafts outside the process.
type DraftStore interface {
	Load(ctx context.Context, userID uuid.UUID) (onboarding.Draft, bool, error)
	Save(ctx context.Context, d onboarding.Draft, ttl time.Duration) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type OnboardingUsecase interface {
	GetDraft(ctx context.Context, caller Caller) (onboarding.Draft, error)
	SaveStep(ctx context.Context, caller Caller, step string, payload []byte) (onboarding.Draft, error)
	Complete(ctx context.Context, caller Caller) (candidate.Profile, error)
}

type Onboarding struct {
	store      DraftStore
	candidates repository.CandidateRepository
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewOnboardingUsecase(store DraftStore, candidates repository.CandidateRepository, ttl time.Duration, log *zap.Logger) *Onboarding {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Onboarding{
		store:      store,
		candidates: candidates,
		ttl:        ttl,
		logger:     logger.OrNop(log),
		now:        time.Now,
	}
}

func (u *Onboarding) GetDraft(ctx context.Context, caller Caller) (onboarding.Draft, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return onboarding.Draft{}, err
	}
	return u.load(ctx, caller.UserID)
}

func (u *Onboarding) SaveStep(ctx context.Context, caller Caller, step string, payload []byte) (onboarding.Draft, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return onboarding.Draft{}, err
	}
	st, err := onboarding.ParseStep(step)
	if err != nil {
		return onboarding.Draft{}, ErrInvalidInput
	}

	d, err := u.load(ctx, caller.UserID)
	if err != nil {
		return onboarding.Draft{}, err
	}
	if err := d.Apply(st, payload, u.now()); err != nil {
		return onboarding.Draft{}, ErrInvalidInput
	}

	if err := u.store.Save(ctx, d, u.ttl); err != nil {
		u.logger.Warn("save onboarding draft failed", zap.Error(err))
		return onboarding.Draft{}, ErrStoreUnavailable
	}
	return d, nil
}

// Complete turns the draft into the candidate profile and discards it.
func (u *Onboarding) Complete(ctx context.Context, caller Caller) (candidate.Profile, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return candidate.Profile{}, err
	}

	d, err := u.load(ctx, caller.UserID)
	if err != nil {
		return candidate.Profile{}, err
	}
	p, err := d.ToProfile()
	if err != nil {
		if errors.Is(err, onboarding.ErrIncomplete) {
			return candidate.Profile{}, ErrOnboardingIncomplete
		}
		return candidate.Profile{}, ErrInvalidInput
	}
	p.UserID = caller.UserID

	saved, err := u.candidates.ReplaceProfile(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		u.logger.Error("persist onboarding profile failed", zap.Error(err))
		return candidate.Profile{}, ErrInternal
	}

	if err := u.store.Delete(ctx, caller.UserID); err != nil {
		u.logger.Warn("delete onboarding draft failed", zap.Stringer("user_id", caller.UserID), zap.Error(err))
	}
	return saved, nil
}

func (u *Onboarding) load(ctx context.Context, userID uuid.UUID) (onboarding.Draft, error) {
	if u.store == nil {
		return onboarding.Draft{}, ErrStoreUnavailable
	}
	d, ok, err := u.store.Load(ctx, userID)
	if err != nil {
		u.logger.Warn("load onboarding draft failed", zap.Error(err))
		return onboarding.Draft{}, ErrStoreUnavailable
	}
	if !ok {
		return onboarding.NewDraft(userID), nil
	}
	return d, nil
}
