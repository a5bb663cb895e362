package dto

import (
	"time"

	"inclusive-jobs/internal/domain/candidate"
	"inclusive-jobs/internal/domain/matching"

	"github.com/google/uuid"
)

type AccessibilityNeeds struct {
	Visual    []string `json:"visual"`
	Hearing   []string `json:"hearing"`
	Mobility  []string `json:"mobility"`
	Cognitive []string `json:"cognitive"`
}

type CandidateProfileRequest struct {
	FullName                 string              `json:"full_name" validate:"omitempty,max=200"`
	Skills                   []string            `json:"skills" validate:"max=100,dive,required,max=100"`
	ExperienceLevel          string              `json:"experience_level" validate:"omitempty,oneof=entry junior mid senior executive"`
	WorkArrangement          string              `json:"work_arrangement" validate:"omitempty,oneof=remote hybrid onsite on-site on_site"`
	PreferredEmploymentTypes []string            `json:"preferred_employment_types" validate:"dive,oneof=full_time part_time contract internship full-time part-time"`
	Accessibility            *AccessibilityNeeds `json:"accessibility_needs"`
}

type CandidateProfileResponse struct {
	ID                       uuid.UUID           `json:"id"`
	UserID                   uuid.UUID           `json:"user_id"`
	FullName                 string              `json:"full_name"`
	Skills                   []string            `json:"skills"`
	ExperienceLevel          string              `json:"experience_level"`
	WorkArrangement          string              `json:"work_arrangement"`
	PreferredEmploymentTypes []string            `json:"preferred_employment_types"`
	Accessibility            *AccessibilityNeeds `json:"accessibility_needs"`
	UpdatedAt                time.Time           `json:"updated_at"`
}

func NewAccessibilityNeeds(n *matching.AccessibilityNeeds) *AccessibilityNeeds {
	if n == nil {
		return nil
	}
	return &AccessibilityNeeds{
		Visual:    nonNil(n.Visual),
		Hearing:   nonNil(n.Hearing),
		Mobility:  nonNil(n.Mobility),
		Cognitive: nonNil(n.Cognitive),
	}
}

func NewCandidateProfileResponse(p candidate.Profile) CandidateProfileResponse {
	types := make([]string, 0, len(p.PreferredEmploymentTypes))
	for _, t := range p.PreferredEmploymentTypes {
		types = append(types, string(t))
	}
	return CandidateProfileResponse{
		ID:                       p.ID,
		UserID:                   p.UserID,
		FullName:                 p.FullName,
		Skills:                   nonNil(p.Skills),
		ExperienceLevel:          string(p.ExperienceLevel),
		WorkArrangement:          string(p.WorkArrangement),
		PreferredEmploymentTypes: types,
		Accessibility:            NewAccessibilityNeeds(p.Accessibility),
		UpdatedAt:                p.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
