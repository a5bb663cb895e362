package repository

import (
	"context"
	"fmt"
	"strings"

	"inclusive-jobs/internal/database"
	"inclusive-jobs/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateAccount inserts the user together with its candidate profile or
// employer record.
func (r *PostgresUserRepository) CreateAccount(ctx context.Context, a user.Account) error {
	u := a.User
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, role, full_name, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now(), now())`,
			u.ID, u.Email, u.PasswordHash, string(u.Role), u.FullName,
		); err != nil {
			return err
		}

		switch u.Role {
		case user.RolePWD:
			_, err := tx.Exec(ctx,
				`INSERT INTO candidate_profiles (id, user_id) VALUES ($1, $2)`,
				uuid.New(), u.ID,
			)
			return err
		case user.RoleEmployer:
			_, err := tx.Exec(ctx,
				`INSERT INTO employers (id, user_id, company_name) VALUES ($1, $2, $3)`,
				uuid.New(), u.ID, strings.TrimSpace(a.CompanyName),
			)
			return err
		default:
			return fmt.Errorf("unsupported role %q", u.Role)
		}
	})
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		if database.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, u user.User) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET email = $2, password_hash = $3, full_name = $4, updated_at = now() WHERE id = $1`,
		u.ID, u.Email, u.PasswordHash, u.FullName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	var u user.User
	var role string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, full_name, created_at, updated_at FROM users `+where,
		arg,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.FullName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
