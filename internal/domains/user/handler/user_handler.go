package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/user"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/internal/shared/response"
)

// UserHandler exposes the auth endpoints: signup, login, refresh, logout, me.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /auth/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh handles GET /auth/refresh_token. The refresh guard has already
// validated the token; this just mints a new access token.
func (h *UserHandler) Refresh(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), claims)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout: revokes the presented access token.
func (h *UserHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims.JTI()); err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me handles GET /auth/me: the current user with their books.
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.UserFrom(c)
	if u == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	view, err := h.service.Profile(c.Request.Context(), u)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
