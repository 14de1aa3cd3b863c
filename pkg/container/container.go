package container

import (
	"context"
	"fmt"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/config"
	"bookly-backend/internal/domains/book"
	bookhandler "bookly-backend/internal/domains/book/handler"
	bookrepo "bookly-backend/internal/domains/book/repository"
	bookservice "bookly-backend/internal/domains/book/service"
	"bookly-backend/internal/domains/review"
	reviewhandler "bookly-backend/internal/domains/review/handler"
	reviewrepo "bookly-backend/internal/domains/review/repository"
	reviewservice "bookly-backend/internal/domains/review/service"
	"bookly-backend/internal/domains/user"
	userhandler "bookly-backend/internal/domains/user/handler"
	userrepo "bookly-backend/internal/domains/user/repository"
	userservice "bookly-backend/internal/domains/user/service"
	infracache "bookly-backend/internal/infrastructure/cache"
	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/pkg/cache"
	"bookly-backend/pkg/jwt"
	"bookly-backend/pkg/logger"
)

// Container wires every dependency of the application. Construction is
// explicit and ordered: infrastructure first, then repositories,
// services, handlers.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *infracache.RedisClient
	Cache cache.Cache

	Tokens    *jwt.Manager
	Blocklist auth.Blocklist

	UserRepository   user.Repository
	BookRepository   book.Repository
	ReviewRepository review.Repository

	UserService   user.Service
	BookService   book.Service
	ReviewService review.Service

	UserHandler   *userhandler.UserHandler
	BookHandler   *bookhandler.BookHandler
	ReviewHandler *reviewhandler.ReviewHandler
}

// New builds the full dependency graph and connects to Postgres and
// Redis. On any failure the partially-built container is cleaned up.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db := database.NewPostgresDB(&database.DBConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	c.DB = db

	redis := infracache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("redis: %w", err)
	}
	c.Redis = redis
	c.Cache = infracache.NewRedisCache(redis)

	c.Tokens = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Algorithm)
	c.Blocklist = auth.NewBlocklist(c.Cache, cfg.JWT.RefreshExpiry)

	c.UserRepository = userrepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookRepository = bookrepo.NewPostgresRepository(db.Pool)
	c.ReviewRepository = reviewrepo.NewPostgresRepository(db.Pool)

	c.UserService = userservice.NewUserService(
		c.UserRepository, c.BookRepository, c.Tokens, c.Blocklist,
		cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry,
	)
	c.BookService = bookservice.NewBookService(c.BookRepository, c.ReviewRepository)
	c.ReviewService = reviewservice.NewReviewService(
		c.ReviewRepository, c.BookRepository, c.UserRepository,
	)

	c.UserHandler = userhandler.NewUserHandler(c.UserService)
	c.BookHandler = bookhandler.NewBookHandler(c.BookService)
	c.ReviewHandler = reviewhandler.NewReviewHandler(c.ReviewService)

	return c, nil
}

// Cleanup releases external connections in reverse order.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
