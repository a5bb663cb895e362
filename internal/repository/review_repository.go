package repository

import (
	"context"
	"errors"
	"fmt"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv review.Review) (review.Review, review.Summary, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]review.Review, int, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

// Create stores the review and refreshes the employer's rating summary in the
// same transaction. The employer row is locked so concurrent reviews
// recompute one after another.
func (r *PostgresReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, review.Summary, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}

	var summary review.Summary
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		var locked uuid.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM employers WHERE id = $1 FOR UPDATE`, rv.EmployerID).Scan(&locked); err != nil {
			if database.IsNoRows(err) {
				return ErrEmployerNotFound
			}
			return err
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO reviews (id, employer_id, reviewer_id, rating, comment, created_at)
			 VALUES ($1, $2, $3, $4, $5, now())
			 RETURNING created_at`,
			rv.ID, rv.EmployerID, rv.ReviewerID, rv.Rating, rv.Comment,
		).Scan(&rv.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyReviewed
			}
			return err
		}

		rows, err := tx.Query(ctx, `SELECT rating FROM reviews WHERE employer_id = $1`, rv.EmployerID)
		if err != nil {
			return err
		}
		ratings := make([]int, 0)
		for rows.Next() {
			var v int
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return err
			}
			ratings = append(ratings, v)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		summary = review.Recompute(ratings)
		_, err = tx.Exec(ctx,
			`UPDATE employers SET average_rating = $2, review_count = $3 WHERE id = $1`,
			rv.EmployerID, summary.AverageRating, summary.ReviewCount,
		)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrEmployerNotFound) || errors.Is(err, ErrAlreadyReviewed) {
			return review.Review{}, review.Summary{}, err
		}
		return review.Review{}, review.Summary{}, fmt.Errorf("create review: %w", err)
	}
	return rv, summary, nil
}

func (r *PostgresReviewRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]review.Review, int, error) {
	limit, offset = clampPage(limit, offset, 20, 100)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM reviews WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, employer_id, reviewer_id, rating, comment, created_at
		 FROM reviews
		 WHERE employer_id = $1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2 OFFSET $3`,
		employerID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.EmployerID, &rv.ReviewerID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
