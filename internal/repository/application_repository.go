package repository

import (
	"context"
	"fmt"
	"time"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, jobID, candidateID uuid.UUID) (Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, jobID, candidateID uuid.UUID) (Application, error) {
	a := Application{ID: uuid.New(), JobID: jobID, CandidateID: candidateID}
	err := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, status, created_at)
		 VALUES ($1, $2, $3, 'pending', now())
		 RETURNING status, created_at`,
		a.ID, jobID, candidateID,
	).Scan(&a.Status, &a.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return Application{}, ErrAlreadyApplied
		case isForeignKeyViolation(err):
			return Application{}, ErrJobNotFound
		default:
			return Application{}, fmt.Errorf("create application: %w", err)
		}
	}
	return a, nil
}
