package candidate

import (
	"time"

	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type Profile struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	FullName                 string
	Skills                   []string
	ExperienceLevel          matching.ExperienceLevel
	WorkArrangement          matching.WorkArrangement
	PreferredEmploymentTypes []matching.EmploymentType
	Accessibility            *matching.AccessibilityNeeds
	UpdatedAt                time.Time
}

func (p Profile) MatchingCandidate() matching.Candidate {
	return matching.Candidate{
		ID:                       p.ID,
		Skills:                   p.Skills,
		ExperienceLevel:          p.ExperienceLevel,
		WorkArrangement:          p.WorkArrangement,
		PreferredEmploymentTypes: p.PreferredEmploymentTypes,
		Accessibility:            p.Accessibility,
	}
}
