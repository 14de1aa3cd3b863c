package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the book business-logic contract consumed by handlers.
type Service interface {
	ListBooks(ctx context.Context) ([]Book, error)
	ListBooksByUser(ctx context.Context, userUID uuid.UUID) ([]Book, error)

	// GetBook returns the book with its reviews attached.
	GetBook(ctx context.Context, uid uuid.UUID) (*BookDetail, error)

	// CreateBook persists a book owned by ownerUID (from the access token).
	CreateBook(ctx context.Context, req CreateBookRequest, ownerUID uuid.UUID) (*Book, error)

	// UpdateBook merges the provided fields into the stored row.
	UpdateBook(ctx context.Context, uid uuid.UUID, req UpdateBookRequest) (*Book, error)

	DeleteBook(ctx context.Context, uid uuid.UUID) error
}
