package repository

import (
	"context"
	"fmt"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
)

// UserQueryRepository serves batch jobs that walk every candidate account.
type UserQueryRepository interface {
	// ListCandidateUserIDsAfter returns up to limit candidate user ids greater
	// than after, in id order. Pass uuid.Nil to start from the beginning.
	ListCandidateUserIDsAfter(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
}

type PostgresUserQueryRepository struct {
	db database.DB
}

func NewPostgresUserQueryRepository(db database.DB) *PostgresUserQueryRepository {
	return &PostgresUserQueryRepository{db: db}
}

func (r *PostgresUserQueryRepository) ListCandidateUserIDsAfter(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	limit, _ = clampPage(limit, 0, 100, 1000)

	rows, err := r.db.Query(ctx,
		`SELECT cp.user_id
		 FROM candidate_profiles cp
		 JOIN users u ON u.id = cp.user_id
		 WHERE u.role = 'pwd' AND cp.user_id > $1
		 ORDER BY cp.user_id ASC
		 LIMIT $2`,
		after, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list candidate users: %w", err)
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan candidate user: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidate users: %w", err)
	}
	return out, nil
}
