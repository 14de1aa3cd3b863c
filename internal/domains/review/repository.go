package review

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the review data-access contract.
type Repository interface {
	// Create inserts a new review row.
	Create(ctx context.Context, r *Review) error

	// GetByUID returns ErrReviewNotFound when the review does not exist.
	GetByUID(ctx context.Context, uid uuid.UUID) (*Review, error)

	// ListByBook returns a book's reviews, newest first.
	ListByBook(ctx context.Context, bookUID uuid.UUID) ([]Review, error)

	// Delete hard-deletes a review. Returns ErrReviewNotFound when missing.
	Delete(ctx context.Context, uid uuid.UUID) error
}
