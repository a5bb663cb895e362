package matching

type Tier int

const (
	TierLimited Tier = iota
	TierConsideration
	TierStrength
)

const (
	StrengthThreshold      = 80
	ConsiderationThreshold = 60
)

func TierOf(score int) Tier {
	switch {
	case score >= StrengthThreshold:
		return TierStrength
	case score >= ConsiderationThreshold:
		return TierConsideration
	default:
		return TierLimited
	}
}

type Analysis struct {
	Strengths       []string `json:"strengths"`
	Considerations  []string `json:"considerations"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

type dimensionText struct {
	strength      string
	consideration string
	limited       string
}

var (
	skillsText = dimensionText{
		strength:      "Strong skills match with the job requirements",
		consideration: "Good skills match with some gaps to address",
		limited:       "Consider developing the skills listed in the job requirements",
	}
	experienceText = dimensionText{
		strength:      "Experience level aligns well with the role",
		consideration: "Experience level is close to what the role asks for",
		limited:       "Experience level differs significantly from the role requirements",
	}
	locationText = dimensionText{
		strength:      "Work arrangement matches your preference",
		consideration: "Work arrangement is partially compatible with your preference",
		limited:       "Work arrangement differs from your preference",
	}
	accessibilityText = dimensionText{
		strength:      "Employer offers the accessibility features you need",
		consideration: "Employer offers some of the accessibility features you need",
		limited:       "Confirm available accommodations with the employer before applying",
	}
)

const (
	SummaryExcellent = "Excellent match - highly recommended to apply"
	SummaryGood      = "Good match - worth applying"
	SummaryLimited   = "Limited match - review the requirements carefully"
)

// Analyze turns a stored breakdown into human-readable guidance.
func Analyze(overall int, b Breakdown) Analysis {
	a := Analysis{
		Strengths:       []string{},
		Considerations:  []string{},
		Recommendations: []string{},
	}

	dims := []struct {
		score int
		text  dimensionText
	}{
		{b.Skills, skillsText},
		{b.Experience, experienceText},
		{b.Location, locationText},
		{b.Accessibility, accessibilityText},
	}
	for _, d := range dims {
		switch TierOf(d.score) {
		case TierStrength:
			a.Strengths = append(a.Strengths, d.text.strength)
		case TierConsideration:
			a.Considerations = append(a.Considerations, d.text.consideration)
		default:
			a.Recommendations = append(a.Recommendations, d.text.limited)
		}
	}

	switch TierOf(overall) {
	case TierStrength:
		a.Summary = SummaryExcellent
	case TierConsideration:
		a.Summary = SummaryGood
	default:
		a.Summary = SummaryLimited
	}
	return a
}
