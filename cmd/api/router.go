package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/domains/user"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/pkg/container"
)

// SetupRouter registers every route under /api/v1.
func SetupRouter(app *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	accessGuard := middleware.TokenGuard(app.Tokens, app.Blocklist, middleware.TokenKindAccess)
	refreshGuard := middleware.TokenGuard(app.Tokens, app.Blocklist, middleware.TokenKindRefresh)
	currentUser := middleware.CurrentUser(app.UserRepository)
	anyRole := middleware.RequireRoles(user.RoleAdmin, user.RoleUser)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		if err := app.DB.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "component": "database"})
			return
		}
		if err := app.Redis.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "component": "redis"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", app.UserHandler.Signup)
		authRoutes.POST("/login", app.UserHandler.Login)
		authRoutes.GET("/refresh_token", refreshGuard, app.UserHandler.Refresh)
		authRoutes.POST("/logout", accessGuard, app.UserHandler.Logout)
		authRoutes.GET("/me", accessGuard, currentUser, anyRole, app.UserHandler.Me)
	}

	bookRoutes := v1.Group("/books", accessGuard)
	{
		bookRoutes.GET("", currentUser, anyRole, app.BookHandler.List)
		bookRoutes.GET("/user/:user_uid", currentUser, anyRole, app.BookHandler.ListByUser)
		bookRoutes.GET("/:book_uid", currentUser, anyRole, app.BookHandler.Get)
		bookRoutes.POST("", currentUser, anyRole, app.BookHandler.Create)
		bookRoutes.PATCH("/:book_uid", currentUser, anyRole, app.BookHandler.Update)
		bookRoutes.DELETE("/:book_uid", currentUser, anyRole, app.BookHandler.Delete)
	}

	reviewRoutes := v1.Group("/reviews", accessGuard)
	{
		reviewRoutes.GET("/book/:book_uid", currentUser, anyRole, app.ReviewHandler.ListByBook)
		reviewRoutes.POST("/book/:book_uid", currentUser, anyRole, app.ReviewHandler.Add)
		reviewRoutes.DELETE("/:review_uid", currentUser, anyRole, app.ReviewHandler.Delete)
	}

	return router
}
