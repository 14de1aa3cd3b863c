package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookly-backend/pkg/logger"
)

// DBConfig holds everything needed to build the PostgreSQL pool.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 5
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = time.Second
	}
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 10 * time.Second
	}
	return &PostgresDB{Config: config}
}

func (db *PostgresDB) connString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
		db.Config.SSLMode,
	)
}

func (db *PostgresDB) poolConfig() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if db.Config.MaxConns > 0 {
		config.MaxConns = db.Config.MaxConns
	}
	if db.Config.MinConns > 0 {
		config.MinConns = db.Config.MinConns
	}
	if db.Config.MaxConnLifetime > 0 {
		config.MaxConnLifetime = db.Config.MaxConnLifetime
	}
	if db.Config.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	}
	if db.Config.HealthCheckPeriod > 0 {
		config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	}
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// Connect establishes the pool, retrying with exponential backoff.
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.poolConfig()
	if err != nil {
		return err
	}

	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				logger.Info("postgres connected", map[string]interface{}{"attempt": attempt})
				db.Pool = pool
				return nil
			}
		}

		logger.Warn(fmt.Sprintf("postgres connection attempt %d failed", attempt), lastErr)

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// HealthCheck verifies database connectivity; call it from the health
// endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the pool. Safe to call on a never-connected instance.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
