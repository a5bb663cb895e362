package seeder

import (
	"context"
	"time"

	"inclusive-jobs/internal/database"

	"github.com/google/uuid"
)

type demoJob struct {
	Title          string
	Description    string
	Location       string
	EmploymentType string
	Arrangement    string
	Experience     string
	Skills         []string
	Features       []string
	OpenFor        time.Duration
}

var demoJobs = []demoJob{
	{
		Title:          "Junior Data Analyst",
		Description:    "Build dashboards and clean datasets for the operations team.",
		Location:       "Remote",
		EmploymentType: "full_time",
		Arrangement:    "remote",
		Experience:     "junior",
		Skills:         []string{"sql", "excel", "python"},
		Features:       []string{"screen_reader", "high_contrast", "flexible_hours"},
		OpenFor:        30 * 24 * time.Hour,
	},
	{
		Title:          "Customer Support Specialist",
		Description:    "Answer customer tickets over chat and email with a supportive team.",
		Location:       "Jakarta",
		EmploymentType: "part_time",
		Arrangement:    "hybrid",
		Experience:     "entry",
		Skills:         []string{"communication", "zendesk"},
		Features:       []string{"sign_language_interpreter", "captioning", "wheelchair_access"},
		OpenFor:        21 * 24 * time.Hour,
	},
	{
		Title:          "Accessibility QA Engineer",
		Description:    "Audit web and mobile releases against WCAG and assistive technology.",
		Location:       "Bandung",
		EmploymentType: "contract",
		Arrangement:    "onsite",
		Experience:     "mid",
		Skills:         []string{"testing", "wcag", "aria", "javascript"},
		Features:       []string{"screen_reader", "magnification", "wheelchair_access"},
		OpenFor:        45 * 24 * time.Hour,
	},
	{
		Title:          "Backend Engineer Intern",
		Description:    "Ship small Go services with mentoring from senior engineers.",
		Location:       "Remote",
		EmploymentType: "internship",
		Arrangement:    "remote",
		Experience:     "entry",
		Skills:         []string{"go", "postgresql", "git"},
		Features:       []string{"flexible_hours", "written_instructions"},
		OpenFor:        14 * 24 * time.Hour,
	},
}

// DemoJobsSeeder posts a handful of open jobs under the demo employer. Job ids
// are derived from the title so reseeding updates rather than duplicates.
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Tables() []Table {
	return []Table{{Name: "jobs", Columns: []string{
		"id", "employer_id", "title", "description", "location", "employment_type",
		"work_arrangement", "experience_level", "required_skills", "accessibility_features",
		"application_deadline", "is_active",
	}}}
}

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	now := time.Now().UTC()
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, j := range demoJobs {
			id := uuid.NewSHA1(demoEmployerID, []byte(j.Title))
			if _, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, employer_id, title, description, location, employment_type,
				                   work_arrangement, experience_level, required_skills,
				                   accessibility_features, application_deadline, is_active)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
				 ON CONFLICT (id) DO UPDATE SET
				   application_deadline = EXCLUDED.application_deadline,
				   is_active = TRUE`,
				id, demoEmployerID, j.Title, j.Description, j.Location, j.EmploymentType,
				j.Arrangement, j.Experience, j.Skills, j.Features, now.Add(j.OpenFor),
			); err != nil {
				return err
			}
		}
		return nil
	})
}
