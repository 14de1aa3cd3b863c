package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/review"
)

// bookService implements book.Service.
type bookService struct {
	books   book.Repository
	reviews review.Repository
}

func NewBookService(books book.Repository, reviews review.Repository) book.Service {
	return &bookService{
		books:   books,
		reviews: reviews,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]book.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

func (s *bookService) ListBooksByUser(ctx context.Context, userUID uuid.UUID) ([]book.Book, error) {
	books, err := s.books.ListByUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("list books by user: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

func (s *bookService) GetBook(ctx context.Context, uid uuid.UUID) (*book.BookDetail, error) {
	b, err := s.books.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list book reviews: %w", err)
	}
	if reviews == nil {
		reviews = []review.Review{}
	}

	return &book.BookDetail{
		Book:    *b,
		Reviews: reviews,
	}, nil
}

func (s *bookService) CreateBook(ctx context.Context, req book.CreateBookRequest, ownerUID uuid.UUID) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &book.Book{
		UID:           uuid.New(),
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		PageCount:     req.PageCount,
		Language:      req.Language,
		UserUID:       &ownerUID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.books.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

// UpdateBook merges the provided fields into the stored row and refreshes
// updated_at. Absent fields keep their current values.
func (s *bookService) UpdateBook(ctx context.Context, uid uuid.UUID, req book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.books.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Publisher != nil {
		b.Publisher = *req.Publisher
	}
	if req.PublishedDate != nil {
		b.PublishedDate = *req.PublishedDate
	}
	if req.PageCount != nil {
		b.PageCount = *req.PageCount
	}
	if req.Language != nil {
		b.Language = *req.Language
	}
	b.UpdatedAt = time.Now()

	if err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) DeleteBook(ctx context.Context, uid uuid.UUID) error {
	return s.books.Delete(ctx, uid)
}
