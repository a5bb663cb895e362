package matching

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

var experienceScale = []ExperienceLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelExecutive}

// Ordinal returns the position on the entry..executive scale. Unknown or
// empty levels count as entry.
func (l ExperienceLevel) Ordinal() int {
	n := ExperienceLevel(normalize(string(l)))
	for i, v := range experienceScale {
		if v == n {
			return i
		}
	}
	return 0
}

func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	n := ExperienceLevel(normalize(s))
	for _, v := range experienceScale {
		if v == n {
			return v, true
		}
	}
	return "", false
}

type WorkArrangement string

const (
	ArrangementRemote WorkArrangement = "remote"
	ArrangementHybrid WorkArrangement = "hybrid"
	ArrangementOnsite WorkArrangement = "onsite"
)

func ParseWorkArrangement(s string) (WorkArrangement, bool) {
	switch WorkArrangement(normalize(s)) {
	case ArrangementRemote:
		return ArrangementRemote, true
	case ArrangementHybrid:
		return ArrangementHybrid, true
	case ArrangementOnsite, "on-site", "on_site":
		return ArrangementOnsite, true
	default:
		return "", false
	}
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

func ParseEmploymentType(s string) (EmploymentType, bool) {
	n := strings.ReplaceAll(normalize(s), "-", "_")
	switch EmploymentType(n) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return EmploymentType(n), true
	default:
		return "", false
	}
}

// AccessibilityNeeds is the candidate's accommodation record. Only Visual is
// consulted by the scoring formulas.
type AccessibilityNeeds struct {
	Visual    []string
	Hearing   []string
	Mobility  []string
	Cognitive []string
}

type Candidate struct {
	ID                       uuid.UUID
	Skills                   []string
	ExperienceLevel          ExperienceLevel
	WorkArrangement          WorkArrangement
	PreferredEmploymentTypes []EmploymentType
	// Accessibility is nil when the candidate never filled in a needs record.
	Accessibility *AccessibilityNeeds
}

type Job struct {
	ID                    uuid.UUID
	RequiredSkills        []string
	ExperienceLevel       ExperienceLevel
	WorkArrangement       WorkArrangement
	EmploymentType        EmploymentType
	AccessibilityFeatures []string
	Deadline              time.Time
	ApplicantCount        int
}

// Eligible reports whether the job still accepts applications at now.
func (j Job) Eligible(now time.Time) bool {
	return !j.Deadline.IsZero() && !j.Deadline.Before(now)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func tagSet(tags []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := normalize(t)
		if n == "" {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}

// NormalizeTags lower-cases, trims and de-duplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		n := normalize(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
