package matching

const (
	RecommendWeightSkills         = 0.40
	RecommendWeightArrangement    = 0.20
	RecommendWeightEmploymentType = 0.20
	RecommendWeightExperience     = 0.10
	RecommendWeightAccessibility  = 0.10
)

type RecommendationBreakdown struct {
	Skills          int  `json:"skills"`
	WorkArrangement bool `json:"workArrangement"`
	EmploymentType  bool `json:"employmentType"`
	Experience      bool `json:"experience"`
	Accessibility   int  `json:"accessibility"`
}

type RecommendationResult struct {
	Overall   int
	Breakdown RecommendationBreakdown
}

// Recommend scores a pair with the employer/recommendation weighting, where
// arrangement, employment type and experience are exact-match booleans.
func Recommend(c Candidate, j Job) RecommendationResult {
	skills := skillsScore(c.Skills, j.RequiredSkills)
	acc := accessibilityScore(c.Accessibility, j.AccessibilityFeatures)

	arrangement := sameArrangement(c.WorkArrangement, j.WorkArrangement)
	employment := prefersEmploymentType(c.PreferredEmploymentTypes, j.EmploymentType)
	experience := c.ExperienceLevel.Ordinal() == j.ExperienceLevel.Ordinal()

	overall := RecommendWeightSkills*skills +
		RecommendWeightArrangement*boolScore(arrangement) +
		RecommendWeightEmploymentType*boolScore(employment) +
		RecommendWeightExperience*boolScore(experience) +
		RecommendWeightAccessibility*acc

	return RecommendationResult{
		Overall: clampScore(overall),
		Breakdown: RecommendationBreakdown{
			Skills:          clampScore(skills),
			WorkArrangement: arrangement,
			EmploymentType:  employment,
			Experience:      experience,
			Accessibility:   clampScore(acc),
		},
	}
}

func sameArrangement(a, b WorkArrangement) bool {
	pa, okA := ParseWorkArrangement(string(a))
	pb, okB := ParseWorkArrangement(string(b))
	return okA && okB && pa == pb
}

func prefersEmploymentType(preferred []EmploymentType, t EmploymentType) bool {
	want, ok := ParseEmploymentType(string(t))
	if !ok {
		return false
	}
	for _, p := range preferred {
		if got, ok := ParseEmploymentType(string(p)); ok && got == want {
			return true
		}
	}
	return false
}

func boolScore(b bool) float64 {
	if b {
		return 100
	}
	return 0
}
