package job

import (
	"time"

	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type Employer struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CompanyName   string
	AverageRating float64
	ReviewCount   int
}

type Posting struct {
	ID                    uuid.UUID
	EmployerID            uuid.UUID
	CompanyName           string
	Title                 string
	Description           string
	Location              string
	EmploymentType        matching.EmploymentType
	WorkArrangement       matching.WorkArrangement
	ExperienceLevel       matching.ExperienceLevel
	RequiredSkills        []string
	AccessibilityFeatures []string
	ApplicationDeadline   time.Time
	IsActive              bool
	ApplicantCount        int
	CreatedAt             time.Time
}

// Open reports whether the posting accepts applications at now.
func (p Posting) Open(now time.Time) bool {
	return p.IsActive && !p.ApplicationDeadline.Before(now)
}

// MatchingJob projects the posting onto the attributes the scorer reads.
func (p Posting) MatchingJob() matching.Job {
	return matching.Job{
		ID:                    p.ID,
		RequiredSkills:        p.RequiredSkills,
		ExperienceLevel:       p.ExperienceLevel,
		WorkArrangement:       p.WorkArrangement,
		EmploymentType:        p.EmploymentType,
		AccessibilityFeatures: p.AccessibilityFeatures,
		Deadline:              p.ApplicationDeadline,
		ApplicantCount:        p.ApplicantCount,
	}
}
