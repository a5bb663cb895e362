package repository

import (
	"context"
	"fmt"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/job"

	"github.com/google/uuid"
)

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (job.Employer, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Employer, error)
}

type PostgresEmployerRepository struct {
	db database.DB
}

func NewPostgresEmployerRepository(db database.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{db: db}
}

func (r *PostgresEmployerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (job.Employer, error) {
	return r.getOne(ctx, `user_id`, userID)
}

func (r *PostgresEmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Employer, error) {
	return r.getOne(ctx, `id`, id)
}

func (r *PostgresEmployerRepository) getOne(ctx context.Context, column string, id uuid.UUID) (job.Employer, error) {
	var e job.Employer
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, company_name, average_rating::float8, review_count FROM employers WHERE `+column+` = $1`,
		id,
	).Scan(&e.ID, &e.UserID, &e.CompanyName, &e.AverageRating, &e.ReviewCount)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Employer{}, ErrEmployerNotFound
		}
		return job.Employer{}, fmt.Errorf("get employer: %w", err)
	}
	return e, nil
}
