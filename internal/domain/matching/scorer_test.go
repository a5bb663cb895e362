package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightSkills+WeightExperience+WeightLocation+WeightAccessibility, 1e-9)
	assert.InDelta(t, 1.0,
		RecommendWeightSkills+RecommendWeightArrangement+RecommendWeightEmploymentType+
			RecommendWeightExperience+RecommendWeightAccessibility,
		1e-9)
}

func TestScore_SkillsCoverageIsCaseInsensitive(t *testing.T) {
	c := Candidate{Skills: []string{" Excel", "python"}}
	j := Job{RequiredSkills: []string{"Python", "sql", "excel"}}

	got := Score(c, j)
	assert.Equal(t, 67, got.Breakdown.Skills)
}

func TestScore_JobWithoutRequiredSkills(t *testing.T) {
	c := Candidate{
		Skills:          []string{"go"},
		ExperienceLevel: LevelMid,
		WorkArrangement: ArrangementRemote,
	}
	j := Job{ExperienceLevel: LevelMid, WorkArrangement: ArrangementRemote}

	got := Score(c, j)
	assert.Equal(t, 0, got.Breakdown.Skills)
	assert.Equal(t, 50, got.Breakdown.Accessibility)
	// 0*.40 + 100*.25 + 100*.15 + 50*.20
	assert.Equal(t, 50, got.Overall)
}

func TestScore_OverallUsesUnroundedSubScores(t *testing.T) {
	c := Candidate{
		Skills:          []string{"python", "excel"},
		ExperienceLevel: LevelMid,
		WorkArrangement: ArrangementRemote,
		Accessibility:   &AccessibilityNeeds{Visual: []string{"screen_reader"}},
	}
	j := Job{
		RequiredSkills:        []string{"python", "sql", "excel"},
		ExperienceLevel:       LevelMid,
		WorkArrangement:       ArrangementRemote,
		AccessibilityFeatures: []string{"screen_reader", "captions"},
	}

	got := Score(c, j)
	assert.Equal(t, Breakdown{Skills: 67, Experience: 100, Location: 100, Accessibility: 100}, got.Breakdown)
	assert.Equal(t, 87, got.Overall)
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate ExperienceLevel
		job       ExperienceLevel
		want      float64
	}{
		{"equal", LevelMid, LevelMid, 100},
		{"overqualified", LevelSenior, LevelEntry, 80},
		{"one below", LevelEntry, LevelJunior, 60},
		{"far below", LevelEntry, LevelSenior, 20},
		{"unknown defaults to entry", "wizard", LevelJunior, 60},
		{"empty vs entry", "", LevelEntry, 100},
		{"case insensitive", "SENIOR", LevelSenior, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceScore(tt.candidate, tt.job))
		})
	}
}

func TestLocationScore(t *testing.T) {
	tests := []struct {
		candidate WorkArrangement
		job       WorkArrangement
		want      float64
	}{
		{ArrangementRemote, ArrangementRemote, 100},
		{ArrangementHybrid, ArrangementRemote, 80},
		{ArrangementHybrid, ArrangementHybrid, 80},
		{ArrangementOnsite, ArrangementOnsite, 100},
		{ArrangementRemote, ArrangementHybrid, 40},
		{ArrangementOnsite, ArrangementRemote, 40},
		{ArrangementHybrid, ArrangementOnsite, 40},
		{"", ArrangementRemote, 40},
	}
	for _, tt := range tests {
		t.Run(string(tt.candidate)+"/"+string(tt.job), func(t *testing.T) {
			assert.Equal(t, tt.want, locationScore(tt.candidate, tt.job))
		})
	}
}

func TestAccessibilityScore(t *testing.T) {
	assert.Equal(t, 50.0, accessibilityScore(nil, []string{"captions"}))
	assert.Equal(t, 0.0, accessibilityScore(&AccessibilityNeeds{}, []string{"captions"}))
	assert.Equal(t, 100.0, accessibilityScore(
		&AccessibilityNeeds{Visual: []string{"screen_reader"}},
		[]string{"screen_reader", "captions"},
	))
	assert.Equal(t, 50.0, accessibilityScore(
		&AccessibilityNeeds{Visual: []string{"screen_reader", "high_contrast"}, Hearing: []string{"captions"}},
		[]string{"Screen_Reader", "captions"},
	))
}

func TestScore_StaysInRange(t *testing.T) {
	c := Candidate{
		Skills:          []string{"a", "b", "c"},
		ExperienceLevel: LevelExecutive,
		WorkArrangement: ArrangementOnsite,
		Accessibility:   &AccessibilityNeeds{Visual: []string{"x"}},
	}
	j := Job{
		RequiredSkills:        []string{"a", "a", "b"},
		ExperienceLevel:       LevelExecutive,
		WorkArrangement:       ArrangementOnsite,
		AccessibilityFeatures: []string{"x"},
	}
	got := Score(c, j)
	assert.Equal(t, 100, got.Overall)
	assert.Equal(t, 100, got.Breakdown.Skills)
}

func TestRecommend(t *testing.T) {
	c := Candidate{
		Skills:                   []string{"go"},
		ExperienceLevel:          LevelMid,
		WorkArrangement:          ArrangementHybrid,
		PreferredEmploymentTypes: []EmploymentType{EmploymentContract, EmploymentFullTime},
	}
	j := Job{
		RequiredSkills:  []string{"Go"},
		ExperienceLevel: LevelMid,
		WorkArrangement: ArrangementHybrid,
		EmploymentType:  EmploymentFullTime,
	}

	got := Recommend(c, j)
	// 100*.40 + 100*.20 + 100*.20 + 100*.10 + 50*.10
	assert.Equal(t, 95, got.Overall)
	assert.True(t, got.Breakdown.WorkArrangement)
	assert.True(t, got.Breakdown.EmploymentType)
	assert.True(t, got.Breakdown.Experience)

	j.WorkArrangement = ArrangementRemote
	j.EmploymentType = EmploymentInternship
	j.ExperienceLevel = LevelSenior
	got = Recommend(c, j)
	assert.Equal(t, 45, got.Overall)
	assert.False(t, got.Breakdown.WorkArrangement)
	assert.False(t, got.Breakdown.EmploymentType)
	assert.False(t, got.Breakdown.Experience)
}

func TestParseHelpers(t *testing.T) {
	lvl, ok := ParseExperienceLevel(" Senior ")
	assert.True(t, ok)
	assert.Equal(t, LevelSenior, lvl)
	_, ok = ParseExperienceLevel("guru")
	assert.False(t, ok)

	arr, ok := ParseWorkArrangement("on-site")
	assert.True(t, ok)
	assert.Equal(t, ArrangementOnsite, arr)

	et, ok := ParseEmploymentType("Full-Time")
	assert.True(t, ok)
	assert.Equal(t, EmploymentFullTime, et)

	assert.Equal(t, []string{"go", "sql"}, NormalizeTags([]string{"Go", " go", "", "SQL"}))
}
