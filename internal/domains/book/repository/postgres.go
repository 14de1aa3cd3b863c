package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookly-backend/internal/domains/book"
)

// postgresRepository implements book.Repository over a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `uid, title, author, publisher, to_char(published_date, 'YYYY-MM-DD'), page_count, language, user_uid, created_at, updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY created_at DESC`, bookColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) ListByUser(ctx context.Context, userUID uuid.UUID) ([]book.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE user_uid = $1 ORDER BY created_at DESC`, bookColumns)

	rows, err := r.pool.Query(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("list books by user: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*book.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE uid = $1`, bookColumns)

	b, err := scanBook(r.pool.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (
			uid, title, author, publisher, published_date,
			page_count, language, user_uid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		b.UID,
		b.Title,
		b.Author,
		b.Publisher,
		b.PublishedDate,
		b.PageCount,
		b.Language,
		b.UserUID,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books SET
			title = $2, author = $3, publisher = $4,
			published_date = $5::date, page_count = $6,
			language = $7, updated_at = $8
		WHERE uid = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		b.UID,
		b.Title,
		b.Author,
		b.Publisher,
		b.PublishedDate,
		b.PageCount,
		b.Language,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.UID,
		&b.Title,
		&b.Author,
		&b.Publisher,
		&b.PublishedDate,
		&b.PageCount,
		&b.Language,
		&b.UserUID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}
