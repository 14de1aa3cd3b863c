package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/review"
	"bookly-backend/internal/domains/user"
)

// reviewService implements review.Service.
type reviewService struct {
	reviews review.Repository
	books   book.Repository
	users   user.Repository
}

func NewReviewService(reviews review.Repository, books book.Repository, users user.Repository) review.Service {
	return &reviewService{
		reviews: reviews,
		books:   books,
		users:   users,
	}
}

func (s *reviewService) AddReviewToBook(ctx context.Context, userEmail string, bookUID uuid.UUID, req review.CreateReviewRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Book first: a missing book fails book_not_found regardless of the
	// user lookup outcome.
	b, err := s.books.GetByUID(ctx, bookUID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	r := &review.Review{
		UID:        uuid.New(),
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		UserUID:    &u.UID,
		BookUID:    &b.UID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return r, nil
}

func (s *reviewService) ListBookReviews(ctx context.Context, bookUID uuid.UUID) (*review.ListResponse, error) {
	if _, err := s.books.GetByUID(ctx, bookUID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, bookUID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []review.Review{}
	}

	return &review.ListResponse{
		Reviews:    reviews,
		Statistics: review.ComputeStats(reviews),
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewUID, requesterUID uuid.UUID) error {
	// The lookup resolves fully before the ownership comparison.
	r, err := s.reviews.GetByUID(ctx, reviewUID)
	if err != nil {
		return err
	}

	if r.UserUID == nil || *r.UserUID != requesterUID {
		return auth.ErrInsufficientPermissions
	}

	return s.reviews.Delete(ctx, reviewUID)
}
