package review

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         uuid.UUID `json:"id"`
	EmployerID uuid.UUID `json:"employer_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type Summary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Recompute derives the employer's denormalized rating summary from the full
// set of ratings. The average is rounded to two decimals; out-of-range
// ratings are ignored.
func Recompute(ratings []int) Summary {
	sum := 0
	n := 0
	for _, r := range ratings {
		if !ValidRating(r) {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return Summary{}
	}
	avg := float64(sum) / float64(n)
	return Summary{
		AverageRating: math.Round(avg*100) / 100,
		ReviewCount:   n,
	}
}
