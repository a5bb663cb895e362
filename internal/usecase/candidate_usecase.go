package usecase

import (
	"context"
	"errors"
	"strings"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/domain/user"
	"inclusive-jobs/internal/logger"
	"inclusive-jobs/internal/repository"

	"go.uber.org/zap"
)

type AccessibilityInput struct {
	Visual    []string
	Hearing   []string
	Mobility  []string
	Cognitive []string
}

type CandidateProfileInput struct {
	FullName                 string
	Skills                   []string
	ExperienceLevel          string
	WorkArrangement          string
	PreferredEmploymentTypes []string
	Accessibility            *AccessibilityInput
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, caller Caller) (candidate.Profile, error)
	UpdateProfile(ctx context.Context, caller Caller, in CandidateProfileInput) (candidate.Profile, error)
}

type Candidates struct {
	repo   repository.CandidateRepository
	logger *zap.Logger
}

func NewCandidateUsecase(repo repository.CandidateRepository, log *zap.Logger) *Candidates {
	return &Candidates{repo: repo, logger: logger.OrNop(log)}
}

func (u *Candidates) GetProfile(ctx context.Context, caller Caller) (candidate.Profile, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return candidate.Profile{}, err
	}
	p, err := u.repo.GetByUserID(ctx, caller.UserID)
	if err != nil {
		return candidate.Profile{}, u.mapRepoError(err)
	}
	return p, nil
}

func (u *Candidates) UpdateProfile(ctx context.Context, caller Caller, in CandidateProfileInput) (candidate.Profile, error) {
	if err := caller.require(user.RolePWD); err != nil {
		return candidate.Profile{}, err
	}

	p, err := buildProfile(in)
	if err != nil {
		return candidate.Profile{}, err
	}
	p.UserID = caller.UserID

	out, err := u.repo.ReplaceProfile(ctx, p)
	if err != nil {
		return candidate.Profile{}, u.mapRepoError(err)
	}
	return out, nil
}

func (u *Candidates) mapRepoError(err error) error {
	if errors.Is(err, repository.ErrCandidateNotFound) {
		return ErrCandidateNotFound
	}
	u.logger.Error("candidate repository failed", zap.Error(err))
	return ErrInternal
}

func buildProfile(in CandidateProfileInput) (candidate.Profile, error) {
	var p candidate.Profile
	p.FullName = strings.TrimSpace(in.FullName)
	p.Skills = matching.NormalizeTags(in.Skills)

	if strings.TrimSpace(in.ExperienceLevel) != "" {
		lvl, ok := matching.ParseExperienceLevel(in.ExperienceLevel)
		if !ok {
			return candidate.Profile{}, ErrInvalidInput
		}
		p.ExperienceLevel = lvl
	}
	if strings.TrimSpace(in.WorkArrangement) != "" {
		arr, ok := matching.ParseWorkArrangement(in.WorkArrangement)
		if !ok {
			return candidate.Profile{}, ErrInvalidInput
		}
		p.WorkArrangement = arr
	}

	seen := map[matching.EmploymentType]bool{}
	p.PreferredEmploymentTypes = make([]matching.EmploymentType, 0, len(in.PreferredEmploymentTypes))
	for _, raw := range in.PreferredEmploymentTypes {
		et, ok := matching.ParseEmploymentType(raw)
		if !ok {
			return candidate.Profile{}, ErrInvalidInput
		}
		if seen[et] {
			continue
		}
		seen[et] = true
		p.PreferredEmploymentTypes = append(p.PreferredEmploymentTypes, et)
	}

	if in.Accessibility != nil {
		p.Accessibility = &matching.AccessibilityNeeds{
			Visual:    matching.NormalizeTags(in.Accessibility.Visual),
			Hearing:   matching.NormalizeTags(in.Accessibility.Hearing),
			Mobility:  matching.NormalizeTags(in.Accessibility.Mobility),
			Cognitive: matching.NormalizeTags(in.Accessibility.Cognitive),
		}
	}
	return p, nil
}
