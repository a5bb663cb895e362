package repository

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchSnapshotRow struct {
	ID              uuid.UUID
	CandidateID     uuid.UUID
	JobID           uuid.UUID
	Overall         int
	Breakdown       matching.Breakdown
	ComputedAt      time.Time
	JobTitle        string
	CompanyName     string
	Location        string
	WorkArrangement string
	Deadline        time.Time
}

type SnapshotFilter struct {
	MinScore int
	Limit    int
	Offset   int
}

type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

type MatchStats struct {
	TotalMatches  int
	AverageScore  float64
	Distribution  []ScoreBucket
	LastGenerated *time.Time
}

type MatchResultRepository interface {
	ReplaceForCandidate(ctx context.Context, candidateID uuid.UUID, computedAt time.Time, results []matching.MatchResult) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, f SnapshotFilter) ([]MatchSnapshotRow, int, error)
	GetByID(ctx context.Context, candidateID, matchID uuid.UUID) (MatchSnapshotRow, error)
	Stats(ctx context.Context, candidateID uuid.UUID) (MatchStats, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

// snapshotLockKey maps a candidate id onto the advisory lock key space.
func snapshotLockKey(candidateID uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(candidateID[:8]))
}

// ReplaceForCandidate swaps the candidate's whole snapshot for results. Rows
// are stored under each result's ID; a nil ID gets a fresh one.
// Concurrent replacements for the same candidate serialize on a
// transaction-scoped advisory lock, so readers only ever see one complete
// snapshot.
func (r *PostgresMatchResultRepository) ReplaceForCandidate(ctx context.Context, candidateID uuid.UUID, computedAt time.Time, results []matching.MatchResult) error {
	ids := make([]string, 0, len(results))
	jobIDs := make([]string, 0, len(results))
	overall := make([]int32, 0, len(results))
	skills := make([]int32, 0, len(results))
	experience := make([]int32, 0, len(results))
	location := make([]int32, 0, len(results))
	accessibility := make([]int32, 0, len(results))
	for _, m := range results {
		id := m.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ids = append(ids, id.String())
		jobIDs = append(jobIDs, m.JobID.String())
		overall = append(overall, int32(m.Overall))
		skills = append(skills, int32(m.Breakdown.Skills))
		experience = append(experience, int32(m.Breakdown.Experience))
		location = append(location, int32(m.Breakdown.Location))
		accessibility = append(accessibility, int32(m.Breakdown.Accessibility))
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, snapshotLockKey(candidateID)); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM match_results WHERE candidate_id = $1`, candidateID); err != nil {
			return err
		}
		if len(results) == 0 {
			return nil
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO match_results (id, candidate_id, job_id, overall_score, skills_score, experience_score,
				location_score, accessibility_score, computed_at)
			 SELECT u.id::uuid, $1, u.job_id::uuid, u.overall, u.skills, u.experience, u.location, u.accessibility, $2
			 FROM unnest($3::text[], $4::text[], $5::int4[], $6::int4[], $7::int4[], $8::int4[], $9::int4[])
				AS u(id, job_id, overall, skills, experience, location, accessibility)`,
			candidateID, computedAt.UTC(), ids, jobIDs, overall, skills, experience, location, accessibility,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("replace match snapshot: %w", err)
	}
	return nil
}

const snapshotSelect = `SELECT m.id, m.candidate_id, m.job_id, m.overall_score,
	m.skills_score, m.experience_score, m.location_score, m.accessibility_score, m.computed_at,
	j.title, e.company_name, j.location, j.work_arrangement, j.application_deadline
FROM match_results m
JOIN jobs j ON j.id = m.job_id
JOIN employers e ON e.id = j.employer_id`

func (r *PostgresMatchResultRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, f SnapshotFilter) ([]MatchSnapshotRow, int, error) {
	limit, offset := clampPage(f.Limit, f.Offset, 10, 100)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM match_results WHERE candidate_id = $1 AND overall_score >= $2`,
		candidateID, f.MinScore,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	rows, err := r.db.Query(ctx,
		snapshotSelect+` WHERE m.candidate_id = $1 AND m.overall_score >= $2
		 ORDER BY m.overall_score DESC, m.computed_at DESC, m.id ASC
		 LIMIT $3 OFFSET $4`,
		candidateID, f.MinScore, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	out := make([]MatchSnapshotRow, 0)
	for rows.Next() {
		m, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresMatchResultRepository) GetByID(ctx context.Context, candidateID, matchID uuid.UUID) (MatchSnapshotRow, error) {
	m, err := scanSnapshotRow(r.db.QueryRow(ctx,
		snapshotSelect+` WHERE m.id = $1 AND m.candidate_id = $2`,
		matchID, candidateID,
	))
	if err != nil {
		if database.IsNoRows(err) {
			return MatchSnapshotRow{}, ErrMatchNotFound
		}
		return MatchSnapshotRow{}, fmt.Errorf("get match: %w", err)
	}
	return m, nil
}

func (r *PostgresMatchResultRepository) Stats(ctx context.Context, candidateID uuid.UUID) (MatchStats, error) {
	var st MatchStats
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(1), COALESCE(AVG(overall_score), 0)::float8, MAX(computed_at)
		 FROM match_results WHERE candidate_id = $1`,
		candidateID,
	).Scan(&st.TotalMatches, &st.AverageScore, &st.LastGenerated); err != nil {
		return MatchStats{}, fmt.Errorf("match stats: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT overall_score, COUNT(1)
		 FROM match_results WHERE candidate_id = $1
		 GROUP BY overall_score
		 ORDER BY overall_score DESC`,
		candidateID,
	)
	if err != nil {
		return MatchStats{}, fmt.Errorf("match distribution: %w", err)
	}
	defer rows.Close()

	st.Distribution = make([]ScoreBucket, 0)
	for rows.Next() {
		var b ScoreBucket
		if err := rows.Scan(&b.Score, &b.Count); err != nil {
			return MatchStats{}, err
		}
		st.Distribution = append(st.Distribution, b)
	}
	if err := rows.Err(); err != nil {
		return MatchStats{}, err
	}
	return st, nil
}

func scanSnapshotRow(row database.Row) (MatchSnapshotRow, error) {
	var m MatchSnapshotRow
	err := row.Scan(
		&m.ID, &m.CandidateID, &m.JobID, &m.Overall,
		&m.Breakdown.Skills, &m.Breakdown.Experience, &m.Breakdown.Location, &m.Breakdown.Accessibility, &m.ComputedAt,
		&m.JobTitle, &m.CompanyName, &m.Location, &m.WorkArrangement, &m.Deadline,
	)
	return m, err
}
