package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookly-backend/internal/domains/user"
	"bookly-backend/pkg/cache"
)

// Cache-aside TTL for user rows. Email lookups run on every authenticated
// request via the current-user middleware, so they are worth caching.
const userCacheTTL = 5 * time.Minute

// postgresRepository implements user.Repository over a pgx pool with a
// redis cache in front of the hot lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const userColumns = `uid, username, email, first_name, last_name, role, is_verified, password_hash, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			uid, username, email, first_name, last_name, role,
			is_verified, password_hash, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		u.UID,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Role,
		u.IsVerified,
		u.PasswordHash,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		// 23505 unique_violation on the email index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:email:%s", email)

	var cached user.User
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	u, err := r.scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, err
	}

	// Cache write failures are not fatal, the row was already read
	_ = r.cache.Set(ctx, cacheKey, u, userCacheTTL)

	return u, nil
}

func (r *postgresRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE uid = $1`, userColumns)
	return r.scanUser(r.pool.QueryRow(ctx, query, uid))
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.UID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.IsVerified,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
