package dto

import (
	"time"

	"inclusive-jobs/internal/domain/matching"
	"inclusive-jobs/internal/repository"

	"github.com/google/uuid"
)

// Match payloads use camelCase keys, as the web client reads them.

type MatchJob struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	Location        string    `json:"location"`
	WorkArrangement string    `json:"workArrangement"`
	Deadline        time.Time `json:"applicationDeadline"`
}

type MatchItem struct {
	ID           uuid.UUID          `json:"id"`
	OverallScore int                `json:"overallScore"`
	Breakdown    matching.Breakdown `json:"breakdown"`
	ComputedAt   time.Time          `json:"computedAt"`
	Job          MatchJob           `json:"job"`
}

func NewMatchItem(r repository.MatchSnapshotRow) MatchItem {
	return MatchItem{
		ID:           r.ID,
		OverallScore: r.Overall,
		Breakdown:    r.Breakdown,
		ComputedAt:   r.ComputedAt,
		Job: MatchJob{
			ID:              r.JobID,
			Title:           r.JobTitle,
			CompanyName:     r.CompanyName,
			Location:        r.Location,
			WorkArrangement: r.WorkArrangement,
			Deadline:        r.Deadline,
		},
	}
}

type GenerateMatchesResponse struct {
	Matches           []MatchItem `json:"matches"`
	TotalJobsAnalyzed int         `json:"totalJobsAnalyzed"`
	GeneratedAt       time.Time   `json:"generatedAt"`
}

type MatchListResponse struct {
	Matches    []MatchItem `json:"matches"`
	Pagination any         `json:"pagination"`
}

type MatchDetailResponse struct {
	MatchItem
	Analysis matching.Analysis `json:"analysis"`
}
