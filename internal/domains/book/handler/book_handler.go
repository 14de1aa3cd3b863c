package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/internal/shared/response"
)

// BookHandler exposes the book CRUD endpoints.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// ListByUser handles GET /books/user/:user_uid.
func (h *BookHandler) ListByUser(c *gin.Context) {
	userUID, err := uuid.Parse(c.Param("user_uid"))
	if err != nil {
		response.BadRequest(c, "invalid user uid")
		return
	}

	books, err := h.service.ListBooksByUser(c.Request.Context(), userUID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// Get handles GET /books/:book_uid, returning the book with its reviews.
func (h *BookHandler) Get(c *gin.Context) {
	bookUID, err := uuid.Parse(c.Param("book_uid"))
	if err != nil {
		response.FromError(c, book.ErrBookNotFound)
		return
	}

	detail, err := h.service.GetBook(c.Request.Context(), bookUID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /books. The owner is taken from the access token.
func (h *BookHandler) Create(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}
	ownerUID, err := uuid.Parse(claims.User.UserUID)
	if err != nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.CreateBook(c.Request.Context(), req, ownerUID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /books/:book_uid with a partial payload.
func (h *BookHandler) Update(c *gin.Context) {
	bookUID, err := uuid.Parse(c.Param("book_uid"))
	if err != nil {
		response.FromError(c, book.ErrBookNotFound)
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateBook(c.Request.Context(), bookUID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /books/:book_uid.
func (h *BookHandler) Delete(c *gin.Context) {
	bookUID, err := uuid.Parse(c.Param("book_uid"))
	if err != nil {
		response.FromError(c, book.ErrBookNotFound)
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), bookUID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
