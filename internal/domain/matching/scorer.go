package matching

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	WeightSkills        = 0.40
	WeightExperience    = 0.25
	WeightLocation      = 0.15
	WeightAccessibility = 0.20

	// EmptyRequirementSkillScore is the skills sub-score for a job that lists
	// no required skills.
	EmptyRequirementSkillScore = 0.0

	// NeutralAccessibilityScore applies when the candidate has no needs record.
	NeutralAccessibilityScore = 50.0
)

type Breakdown struct {
	Skills        int `json:"skills"`
	Experience    int `json:"experience"`
	Location      int `json:"location"`
	Accessibility int `json:"accessibility"`
}

type Result struct {
	Overall   int
	Breakdown Breakdown
}

type MatchResult struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Overall     int
	Breakdown   Breakdown
	ComputedAt  time.Time
}

// Score computes the candidate-facing compatibility of one candidate/job pair.
func Score(c Candidate, j Job) Result {
	skills := skillsScore(c.Skills, j.RequiredSkills)
	exp := experienceScore(c.ExperienceLevel, j.ExperienceLevel)
	loc := locationScore(c.WorkArrangement, j.WorkArrangement)
	acc := accessibilityScore(c.Accessibility, j.AccessibilityFeatures)

	overall := WeightSkills*skills +
		WeightExperience*exp +
		WeightLocation*loc +
		WeightAccessibility*acc

	return Result{
		Overall: clampScore(overall),
		Breakdown: Breakdown{
			Skills:        clampScore(skills),
			Experience:    clampScore(exp),
			Location:      clampScore(loc),
			Accessibility: clampScore(acc),
		},
	}
}

func skillsScore(candidate, required []string) float64 {
	req := tagSet(required)
	if len(req) == 0 {
		return EmptyRequirementSkillScore
	}
	have := tagSet(candidate)
	k := 0
	for s := range req {
		if _, ok := have[s]; ok {
			k++
		}
	}
	return 100 * float64(k) / float64(len(req))
}

func experienceScore(candidate, job ExperienceLevel) float64 {
	c := candidate.Ordinal()
	j := job.Ordinal()
	switch {
	case c == j:
		return 100
	case c >= j:
		return 80
	case j-c == 1:
		return 60
	default:
		return 20
	}
}

func locationScore(candidate, job WorkArrangement) float64 {
	c, _ := ParseWorkArrangement(string(candidate))
	j, _ := ParseWorkArrangement(string(job))
	switch {
	case c == ArrangementRemote && j == ArrangementRemote:
		return 100
	case c == ArrangementHybrid && (j == ArrangementRemote || j == ArrangementHybrid):
		return 80
	case c == ArrangementOnsite && j == ArrangementOnsite:
		return 100
	default:
		return 40
	}
}

func accessibilityScore(needs *AccessibilityNeeds, features []string) float64 {
	if needs == nil {
		return NeutralAccessibilityScore
	}
	visual := tagSet(needs.Visual)
	offered := tagSet(features)
	k := 0
	for v := range visual {
		if _, ok := offered[v]; ok {
			k++
		}
	}
	denom := len(visual)
	if denom < 1 {
		denom = 1
	}
	return 100 * float64(k) / float64(denom)
}

func clampScore(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
