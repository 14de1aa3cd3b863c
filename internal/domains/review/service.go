package review

import (
	"context"

	"github.com/google/uuid"
)

// Service is the review business-logic contract.
type Service interface {
	// AddReviewToBook creates a review by the user behind userEmail.
	// Fails with book.ErrBookNotFound before any user check, and with
	// user.ErrUserNotFound when the token's subject no longer exists.
	AddReviewToBook(ctx context.Context, userEmail string, bookUID uuid.UUID, req CreateReviewRequest) (*Review, error)

	// ListBookReviews returns a book's reviews with statistics.
	ListBookReviews(ctx context.Context, bookUID uuid.UUID) (*ListResponse, error)

	// DeleteReview removes a review. Only the owning user may delete it;
	// anyone else gets auth.ErrInsufficientPermissions.
	DeleteReview(ctx context.Context, reviewUID, requesterUID uuid.UUID) error
}
