package dto

import "inclusive-jobs/internal/domain/review"

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type CreateReviewResponse struct {
	Review  review.Review  `json:"review"`
	Summary review.Summary `json:"employer_rating"`
}

type ReviewListResponse struct {
	Items      []review.Review `json:"items"`
	Pagination any             `json:"pagination"`
}
