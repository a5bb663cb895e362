package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type JobListFilter struct {
	Query    string
	Location string
	Now      time.Time
	Limit    int
	Offset   int
}

type JobRepository interface {
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListOpen(ctx context.Context, f JobListFilter) ([]job.Posting, int, error)
	ListActiveForMatching(ctx context.Context, now time.Time) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobSelect = `SELECT j.id, j.employer_id, e.company_name, j.title, j.description, j.location,
	j.employment_type, j.work_arrangement, j.experience_level,
	j.required_skills, j.accessibility_features, j.application_deadline, j.is_active, j.created_at,
	(SELECT COUNT(1) FROM applications a WHERE a.job_id = j.id)
FROM jobs j
JOIN employers e ON e.id = j.employer_id`

const openJobsWhere = ` WHERE j.is_active = true AND j.application_deadline >= $1
	AND ($2 = '' OR j.title ILIKE '%' || $2 || '%' OR j.description ILIKE '%' || $2 || '%')
	AND ($3 = '' OR j.location ILIKE '%' || $3 || '%')`

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, description, location, employment_type, work_arrangement,
			experience_level, required_skills, accessibility_features, application_deadline, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, now())`,
		p.ID, p.EmployerID, p.Title, p.Description, p.Location,
		string(p.EmploymentType), string(p.WorkArrangement), string(p.ExperienceLevel),
		matching.NormalizeTags(p.RequiredSkills), matching.NormalizeTags(p.AccessibilityFeatures),
		p.ApplicationDeadline.UTC(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return job.Posting{}, ErrEmployerNotFound
		}
		return job.Posting{}, fmt.Errorf("create job: %w", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := scanPosting(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, fmt.Errorf("get job: %w", err)
	}
	return p, nil
}

// ListOpen returns one page of active postings still accepting applications,
// newest first, plus the total number of matching postings.
func (r *PostgresJobRepository) ListOpen(ctx context.Context, f JobListFilter) ([]job.Posting, int, error) {
	limit, offset := clampPage(f.Limit, f.Offset, 20, 100)
	now := f.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	q := strings.TrimSpace(f.Query)
	loc := strings.TrimSpace(f.Location)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j`+openJobsWhere, now, q, loc).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	rows, err := r.db.Query(ctx,
		jobSelect+openJobsWhere+` ORDER BY j.created_at DESC, j.id ASC LIMIT $4 OFFSET $5`,
		now, q, loc, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out, err := collectPostings(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListActiveForMatching returns every active posting with deadline >= now.
func (r *PostgresJobRepository) ListActiveForMatching(ctx context.Context, now time.Time) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		jobSelect+` WHERE j.is_active = true AND j.application_deadline >= $1 ORDER BY j.created_at ASC, j.id ASC`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	defer rows.Close()
	return collectPostings(rows)
}

func collectPostings(rows database.Rows) ([]job.Posting, error) {
	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
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

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var employment, arrangement, level string
	err := row.Scan(
		&p.ID, &p.EmployerID, &p.CompanyName, &p.Title, &p.Description, &p.Location,
		&employment, &arrangement, &level,
		&p.RequiredSkills, &p.AccessibilityFeatures, &p.ApplicationDeadline, &p.IsActive, &p.CreatedAt,
		&p.ApplicantCount,
	)
	if err != nil {
		return job.Posting{}, err
	}
	p.EmploymentType = matching.EmploymentType(employment)
	p.WorkArrangement = matching.WorkArrangement(arrangement)
	p.ExperienceLevel = matching.ExperienceLevel(level)
	return p, nil
}
