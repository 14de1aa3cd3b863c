package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookly-backend/internal/domains/review"
)

const dateLayout = "2006-01-02"

// CreateBookRequest adds a book owned by the requesting user.
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required"`
	Author        string `json:"author" binding:"required"`
	Publisher     string `json:"publisher" binding:"required"`
	PublishedDate string `json:"published_date" binding:"required"`
	PageCount     int    `json:"page_count" binding:"required"`
	Language      string `json:"language" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Publisher, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.PublishedDate,
			validation.Required,
			validation.Date(dateLayout).Error("published_date must be YYYY-MM-DD"),
		),
		validation.Field(&r.PageCount, validation.Required, validation.Min(1)),
		validation.Field(&r.Language, validation.Required, validation.Length(2, 50)),
	)
}

// UpdateBookRequest is a partial update: nil fields keep their current
// value, provided fields merge into the existing row.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Publisher     *string `json:"publisher"`
	PublishedDate *string `json:"published_date"`
	PageCount     *int    `json:"page_count"`
	Language      *string `json:"language"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Length(1, 255)),
		validation.Field(&r.Publisher, validation.Length(1, 255)),
		validation.Field(&r.PublishedDate,
			validation.Date(dateLayout).Error("published_date must be YYYY-MM-DD"),
		),
		validation.Field(&r.PageCount, validation.Min(1)),
		validation.Field(&r.Language, validation.Length(2, 50)),
	)
}

// BookDetail is the detail view: the book plus its reviews.
type BookDetail struct {
	Book
	Reviews []review.Review `json:"reviews"`
}
