package onboarding

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type Step string

const (
	StepProfile       Step = "profile"
	StepSkills        Step = "skills"
	StepPreferences   Step = "preferences"
	StepAccessibility Step = "accessibility"
)

var (
	ErrUnknownStep = errors.New("unknown onboarding step")
	ErrInvalidStep = errors.New("invalid onboarding step payload")
	ErrIncomplete  = errors.New("onboarding incomplete")
)

var requiredSteps = []Step{StepProfile, StepSkills, StepPreferences}

func ParseStep(s string) (Step, error) {
	switch st := Step(strings.ToLower(strings.TrimSpace(s))); st {
	case StepProfile, StepSkills, StepPreferences, StepAccessibility:
		return st, nil
	default:
		return "", ErrUnknownStep
	}
}

type ProfileStep struct {
	FullName        string `json:"full_name"`
	ExperienceLevel string `json:"experience_level"`
}

type SkillsStep struct {
	Skills []string `json:"skills"`
}

type PreferencesStep struct {
	WorkArrangement string   `json:"work_arrangement"`
	EmploymentTypes []string `json:"employment_types"`
}

type AccessibilityStep struct {
	Visual    []string `json:"visual"`
	Hearing   []string `json:"hearing"`
	Mobility  []string `json:"mobility"`
	Cognitive []string `json:"cognitive"`
}

// Draft is the in-progress onboarding state of one user. It lives in an
// external store keyed by user id and expires on its own.
type Draft struct {
	UserID        uuid.UUID          `json:"user_id"`
	Profile       *ProfileStep       `json:"profile,omitempty"`
	Skills        *SkillsStep        `json:"skills,omitempty"`
	Preferences   *PreferencesStep   `json:"preferences,omitempty"`
	Accessibility *AccessibilityStep `json:"accessibility,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewDraft(userID uuid.UUID) Draft {
	return Draft{UserID: userID}
}

// Apply decodes and validates one step payload into the draft.
func (d *Draft) Apply(step Step, raw []byte, now time.Time) error {
	switch step {
	case StepProfile:
		var p ProfileStep
		if err := decodeStep(raw, &p); err != nil {
			return err
		}
		if _, ok := matching.ParseExperienceLevel(p.ExperienceLevel); !ok {
			return fmt.Errorf("%w: experience_level", ErrInvalidStep)
		}
		p.FullName = strings.TrimSpace(p.FullName)
		d.Profile = &p
	case StepSkills:
		var s SkillsStep
		if err := decodeStep(raw, &s); err != nil {
			return err
		}
		s.Skills = matching.NormalizeTags(s.Skills)
		if len(s.Skills) == 0 {
			return fmt.Errorf("%w: skills", ErrInvalidStep)
		}
		d.Skills = &s
	case StepPreferences:
		var p PreferencesStep
		if err := decodeStep(raw, &p); err != nil {
			return err
		}
		if _, ok := matching.ParseWorkArrangement(p.WorkArrangement); !ok {
			return fmt.Errorf("%w: work_arrangement", ErrInvalidStep)
		}
		for _, et := range p.EmploymentTypes {
			if _, ok := matching.ParseEmploymentType(et); !ok {
				return fmt.Errorf("%w: employment_types", ErrInvalidStep)
			}
		}
		d.Preferences = &p
	case StepAccessibility:
		var a AccessibilityStep
		if err := decodeStep(raw, &a); err != nil {
			return err
		}
		d.Accessibility = &a
	default:
		return ErrUnknownStep
	}
	d.UpdatedAt = now.UTC()
	return nil
}

func (d Draft) CompletedSteps() []Step {
	out := make([]Step, 0, 4)
	if d.Profile != nil {
		out = append(out, StepProfile)
	}
	if d.Skills != nil {
		out = append(out, StepSkills)
	}
	if d.Preferences != nil {
		out = append(out, StepPreferences)
	}
	if d.Accessibility != nil {
		out = append(out, StepAccessibility)
	}
	return out
}

// MissingSteps lists required steps not yet filled in.
func (d Draft) MissingSteps() []Step {
	done := map[Step]bool{}
	for _, s := range d.CompletedSteps() {
		done[s] = true
	}
	out := make([]Step, 0, len(requiredSteps))
	for _, s := range requiredSteps {
		if !done[s] {
			out = append(out, s)
		}
	}
	return out
}

// ToProfile converts a complete draft into the candidate profile it describes.
func (d Draft) ToProfile() (candidate.Profile, error) {
	if len(d.MissingSteps()) > 0 {
		return candidate.Profile{}, ErrIncomplete
	}

	level, _ := matching.ParseExperienceLevel(d.Profile.ExperienceLevel)
	arrangement, _ := matching.ParseWorkArrangement(d.Preferences.WorkArrangement)

	types := make([]matching.EmploymentType, 0, len(d.Preferences.EmploymentTypes))
	seen := map[matching.EmploymentType]bool{}
	for _, raw := range d.Preferences.EmploymentTypes {
		et, ok := matching.ParseEmploymentType(raw)
		if !ok || seen[et] {
			continue
		}
		seen[et] = true
		types = append(types, et)
	}

	p := candidate.Profile{
		UserID:                   d.UserID,
		FullName:                 d.Profile.FullName,
		Skills:                   matching.NormalizeTags(d.Skills.Skills),
		ExperienceLevel:          level,
		WorkArrangement:          arrangement,
		PreferredEmploymentTypes: types,
	}
	if d.Accessibility != nil {
		p.Accessibility = &matching.AccessibilityNeeds{
			Visual:    matching.NormalizeTags(d.Accessibility.Visual),
			Hearing:   matching.NormalizeTags(d.Accessibility.Hearing),
			Mobility:  matching.NormalizeTags(d.Accessibility.Mobility),
			Cognitive: matching.NormalizeTags(d.Accessibility.Cognitive),
		}
	}
	return p, nil
}

func decodeStep(raw []byte, out any) error {
	if len(raw) == 0 {
		return ErrInvalidStep
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	return nil
}
