package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookly-backend/internal/auth"
	"bookly-backend/internal/domains/book"
	"bookly-backend/internal/domains/review"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/internal/shared/response"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(service review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Add handles POST /reviews/book/:book_uid. The reviewer is resolved from
// the access token's email claim.
func (h *ReviewHandler) Add(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	bookUID, err := uuid.Parse(c.Param("book_uid"))
	if err != nil {
		response.FromError(c, book.ErrBookNotFound)
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.AddReviewToBook(c.Request.Context(), claims.User.Email, bookUID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListByBook handles GET /reviews/book/:book_uid.
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookUID, err := uuid.Parse(c.Param("book_uid"))
	if err != nil {
		response.FromError(c, book.ErrBookNotFound)
		return
	}

	resp, err := h.service.ListBookReviews(c.Request.Context(), bookUID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /reviews/:review_uid. Only the review's author
// may delete it.
func (h *ReviewHandler) Delete(c *gin.Context) {
	u := middleware.UserFrom(c)
	if u == nil {
		response.FromError(c, auth.ErrInvalidToken)
		return
	}

	reviewUID, err := uuid.Parse(c.Param("review_uid"))
	if err != nil {
		response.FromError(c, review.ErrReviewNotFound)
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), reviewUID, u.UID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
