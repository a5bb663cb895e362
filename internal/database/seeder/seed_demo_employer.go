package seeder

import (
	"context"
	"fmt"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmployerEmail    = "employer@demo.inclusive-jobs.local"
	DemoEmployerPassword = "demo-employer-pass"
	DemoCompanyName      = "Lumen Accessible Tech"
)

var (
	demoEmployerUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("inclusive-jobs/demo/employer-user"))
	demoEmployerID     = uuid.NewSHA1(uuid.NameSpaceURL, []byte("inclusive-jobs/demo/employer"))
)

// DemoEmployerSeeder creates a login-able employer account for local use.
type DemoEmployerSeeder struct{}

func (DemoEmployerSeeder) Name() string { return "demo_employer" }

func (DemoEmployerSeeder) Tables() []Table {
	return []Table{
		{Name: "users", Columns: []string{"id", "email", "password_hash", "role", "full_name"}},
		{Name: "employers", Columns: []string{"id", "user_id", "company_name"}},
	}
}

func (DemoEmployerSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoEmployerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, role, full_name)
			 VALUES ($1, $2, $3, 'employer', 'Demo Recruiter')
			 ON CONFLICT (email) DO NOTHING`,
			demoEmployerUserID, DemoEmployerEmail, string(hash),
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO employers (id, user_id, company_name)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO NOTHING`,
			demoEmployerID, demoEmployerUserID, DemoCompanyName,
		)
		return err
	})
}
