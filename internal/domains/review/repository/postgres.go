package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/review"
	"bookly-backend/pkg/database"
)

// postgresRepository implements review.Repository over a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

const reviewColumns = `uid, rating, review_text, user_uid, book_uid, created_at, updated_at`

// Create inserts the review in a transaction that re-checks the book row, so
// a concurrently deleted book cannot acquire a dangling review between the
// service-level existence check and the insert.
func (r *postgresRepository) Create(ctx context.Context, rev *review.Review) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if rev.BookUID != nil {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM books WHERE uid = $1 FOR SHARE)`, *rev.BookUID,
			).Scan(&exists)
			if err != nil {
				return fmt.Errorf("check book: %w", err)
			}
			if !exists {
				return book.ErrBookNotFound
			}
		}

		query := `
			INSERT INTO reviews (
				uid, rating, review_text, user_uid, book_uid,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err := tx.Exec(ctx, query,
			rev.UID,
			rev.Rating,
			rev.ReviewText,
			rev.UserUID,
			rev.BookUID,
			rev.CreatedAt,
			rev.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert review: %w", err)
		}
		return nil
	})
}

func (r *postgresRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*review.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE uid = $1`, reviewColumns)

	rev, err := scanReview(r.pool.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rev, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookUID uuid.UUID) ([]review.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE book_uid = $1 ORDER BY created_at DESC`, reviewColumns)

	rows, err := r.pool.Query(ctx, query, bookUID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

func (r *postgresRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func scanReview(row pgx.Row) (*review.Review, error) {
	var rev review.Review
	err := row.Scan(
		&rev.UID,
		&rev.Rating,
		&rev.ReviewText,
		&rev.UserUID,
		&rev.BookUID,
		&rev.CreatedAt,
		&rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
