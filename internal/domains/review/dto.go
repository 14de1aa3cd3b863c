package review

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Rating is capped below five.
const maxRating = 4

// CreateReviewRequest attaches a review to a book.
type CreateReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text" binding:"required"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Min(0),
			validation.Max(maxRating).Error("rating must be less than 5"),
		),
		validation.Field(&r.ReviewText,
			validation.Required.Error("review_text is required"),
			validation.Length(1, 2000),
		),
	)
}

// Stats summarizes the reviews of one book.
type Stats struct {
	TotalReviews  int             `json:"total_reviews"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// ListResponse is the per-book review listing with statistics.
type ListResponse struct {
	Reviews    []Review `json:"reviews"`
	Statistics Stats    `json:"statistics"`
}

// ComputeStats derives the statistics from a review list. The average is
// computed in decimal and rounded to two places so JSON never carries float
// artifacts.
func ComputeStats(reviews []Review) Stats {
	stats := Stats{
		TotalReviews:  len(reviews),
		AverageRating: decimal.Zero,
	}
	if len(reviews) == 0 {
		return stats
	}

	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	stats.AverageRating = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2)
	return stats
}
