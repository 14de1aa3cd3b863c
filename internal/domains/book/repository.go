package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book data-access contract. The pgx implementation lives
// in repository/; tests substitute in-memory fakes.
type Repository interface {
	// List returns all books, newest first.
	List(ctx context.Context) ([]Book, error)

	// ListByUser returns the books owned by a user, newest first.
	ListByUser(ctx context.Context, userUID uuid.UUID) ([]Book, error)

	// GetByUID returns ErrBookNotFound when the book does not exist.
	GetByUID(ctx context.Context, uid uuid.UUID) (*Book, error)

	// Create inserts a new book row.
	Create(ctx context.Context, b *Book) error

	// Update writes all mutable columns of b and refreshes updated_at.
	// Returns ErrBookNotFound when the row is gone.
	Update(ctx context.Context, b *Book) error

	// Delete hard-deletes a book. Returns ErrBookNotFound when missing.
	Delete(ctx context.Context, uid uuid.UUID) error
}
