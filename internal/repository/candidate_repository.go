package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	ReplaceProfile(ctx context.Context, p candidate.Profile) (candidate.Profile, error)
	ListProfilesAfter(ctx context.Context, after uuid.UUID, limit int) ([]candidate.Profile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateSelect = `SELECT cp.id, cp.user_id, u.full_name, cp.skills,
	COALESCE(cp.experience_level, ''), COALESCE(cp.work_arrangement, ''),
	cp.preferred_employment_types, cp.updated_at,
	an.candidate_id IS NOT NULL,
	COALESCE(an.visual_support, '{}'), COALESCE(an.hearing_support, '{}'),
	COALESCE(an.mobility_support, '{}'), COALESCE(an.cognitive_support, '{}')
FROM candidate_profiles cp
JOIN users u ON u.id = cp.user_id
LEFT JOIN accessibility_needs an ON an.candidate_id = cp.id`

func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	p, err := scanCandidate(r.db.QueryRow(ctx, candidateSelect+` WHERE cp.user_id = $1`, userID))
	if err != nil {
		if database.IsNoRows(err) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, fmt.Errorf("get candidate: %w", err)
	}
	return p, nil
}

// ReplaceProfile overwrites the matching attributes and accessibility record
// of the candidate owned by p.UserID. A nil Accessibility removes the record.
func (r *PostgresCandidateRepository) ReplaceProfile(ctx context.Context, p candidate.Profile) (candidate.Profile, error) {
	types := make([]string, 0, len(p.PreferredEmploymentTypes))
	for _, t := range p.PreferredEmploymentTypes {
		types = append(types, string(t))
	}
	skills := matching.NormalizeTags(p.Skills)

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var candidateID uuid.UUID
		err := tx.QueryRow(ctx,
			`UPDATE candidate_profiles
			 SET skills = $2, experience_level = $3, work_arrangement = $4,
				 preferred_employment_types = $5, updated_at = now()
			 WHERE user_id = $1
			 RETURNING id`,
			p.UserID, skills, string(p.ExperienceLevel), string(p.WorkArrangement), types,
		).Scan(&candidateID)
		if err != nil {
			if database.IsNoRows(err) {
				return ErrCandidateNotFound
			}
			return err
		}

		if name := strings.TrimSpace(p.FullName); name != "" {
			if _, err := tx.Exec(ctx, `UPDATE users SET full_name = $2, updated_at = now() WHERE id = $1`, p.UserID, name); err != nil {
				return err
			}
		}

		if p.Accessibility == nil {
			_, err := tx.Exec(ctx, `DELETE FROM accessibility_needs WHERE candidate_id = $1`, candidateID)
			return err
		}
		a := p.Accessibility
		_, err = tx.Exec(ctx,
			`INSERT INTO accessibility_needs (candidate_id, visual_support, hearing_support, mobility_support, cognitive_support, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now())
			 ON CONFLICT (candidate_id) DO UPDATE SET
				visual_support = EXCLUDED.visual_support,
				hearing_support = EXCLUDED.hearing_support,
				mobility_support = EXCLUDED.mobility_support,
				cognitive_support = EXCLUDED.cognitive_support,
				updated_at = EXCLUDED.updated_at`,
			candidateID,
			matching.NormalizeTags(a.Visual),
			matching.NormalizeTags(a.Hearing),
			matching.NormalizeTags(a.Mobility),
			matching.NormalizeTags(a.Cognitive),
		)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return candidate.Profile{}, err
		}
		return candidate.Profile{}, fmt.Errorf("replace candidate profile: %w", err)
	}

	return r.GetByUserID(ctx, p.UserID)
}

const (
	DefaultProfilePageSize = 500
	maxProfilePageSize     = 5000
)

// ListProfilesAfter returns up to limit profiles with an id greater than
// after, in id order. Pass uuid.Nil for the first page and the last id seen
// for the next.
func (r *PostgresCandidateRepository) ListProfilesAfter(ctx context.Context, after uuid.UUID, limit int) ([]candidate.Profile, error) {
	if limit <= 0 {
		limit = DefaultProfilePageSize
	}
	if limit > maxProfilePageSize {
		limit = maxProfilePageSize
	}

	rows, err := r.db.Query(ctx, candidateSelect+` WHERE cp.id > $1 ORDER BY cp.id ASC LIMIT $2`, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row) (candidate.Profile, error) {
	var (
		p                  candidate.Profile
		level, arrangement string
		types              []string
		updatedAt          time.Time
		hasNeeds           bool
		needs              matching.AccessibilityNeeds
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Skills,
		&level, &arrangement,
		&types, &updatedAt,
		&hasNeeds,
		&needs.Visual, &needs.Hearing, &needs.Mobility, &needs.Cognitive,
	)
	if err != nil {
		return candidate.Profile{}, err
	}

	p.ExperienceLevel = matching.ExperienceLevel(level)
	p.WorkArrangement = matching.WorkArrangement(arrangement)
	p.PreferredEmploymentTypes = make([]matching.EmploymentType, 0, len(types))
	for _, t := range types {
		p.PreferredEmploymentTypes = append(p.PreferredEmploymentTypes, matching.EmploymentType(t))
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	p.UpdatedAt = updatedAt
	if hasNeeds {
		p.Accessibility = &needs
	}
	return p, nil
}
