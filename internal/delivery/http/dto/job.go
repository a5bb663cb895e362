package dto

import (
	"time"

	"inclusive-jobs/internal/domain/job"
	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title                 string    `json:"title" validate:"required,min=3,max=200"`
	Description           string    `json:"description" validate:"required,min=10"`
	Location              string    `json:"location" validate:"required,max=200"`
	EmploymentType        string    `json:"employment_type" validate:"required,oneof=full_time part_time contract internship full-time part-time"`
	WorkArrangement       string    `json:"work_arrangement" validate:"required,oneof=remote hybrid onsite on-site on_site"`
	ExperienceLevel       string    `json:"experience_level" validate:"required,oneof=entry junior mid senior executive"`
	RequiredSkills        []string  `json:"required_skills" validate:"max=100,dive,required,max=100"`
	AccessibilityFeatures []string  `json:"accessibility_features" validate:"max=100,dive,required,max=100"`
	ApplicationDeadline   time.Time `json:"application_deadline" validate:"required"`
}

type JobResponse struct {
	ID                    uuid.UUID `json:"id"`
	EmployerID            uuid.UUID `json:"employer_id"`
	CompanyName           string    `json:"company_name"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Location              string    `json:"location"`
	EmploymentType        string    `json:"employment_type"`
	WorkArrangement       string    `json:"work_arrangement"`
	ExperienceLevel       string    `json:"experience_level"`
	RequiredSkills        []string  `json:"required_skills"`
	AccessibilityFeatures []string  `json:"accessibility_features"`
	ApplicationDeadline   time.Time `json:"application_deadline"`
	ApplicantCount        int       `json:"applicant_count"`
	CreatedAt             time.Time `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:                    p.ID,
		EmployerID:            p.EmployerID,
		CompanyName:           p.CompanyName,
		Title:                 p.Title,
		Description:           p.Description,
		Location:              p.Location,
		EmploymentType:        string(p.EmploymentType),
		WorkArrangement:       string(p.WorkArrangement),
		ExperienceLevel:       string(p.ExperienceLevel),
		RequiredSkills:        nonNil(p.RequiredSkills),
		AccessibilityFeatures: nonNil(p.AccessibilityFeatures),
		ApplicationDeadline:   p.ApplicationDeadline,
		ApplicantCount:        p.ApplicantCount,
		CreatedAt:             p.CreatedAt,
	}
}

type JobListResponse struct {
	Items      []JobResponse `json:"items"`
	Pagination any           `json:"pagination"`
}

type RecommendedJobResponse struct {
	Job        JobResponse                      `json:"job"`
	MatchScore int                              `json:"match_score"`
	Breakdown  matching.RecommendationBreakdown `json:"breakdown"`
}

type RankedCandidateResponse struct {
	CandidateID   uuid.UUID                        `json:"candidate_id"`
	FullName      string                           `json:"full_name"`
	Skills        []string                         `json:"skills"`
	Accessibility *AccessibilityNeeds              `json:"accessibility_needs"`
	MatchScore    int                              `json:"match_score"`
	Breakdown     matching.RecommendationBreakdown `json:"breakdown"`
}

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewApplicationResponse(a repository.Application) ApplicationResponse {
	return ApplicationResponse{ID: a.ID, JobID: a.JobID, Status: a.Status, CreatedAt: a.CreatedAt}
}
