package delivery

import (
	"net/http"
	"strconv"

	authdelivery "watchlog-backend/internal/auth/delivery"
	reviewdto "watchlog-backend/internal/review/dto"
	"watchlog-backend/internal/review/usecase"
	"watchlog-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// GetAll returns all reviews of the authenticated user
// GET /api/reviews
func (h *ReviewHandler) GetAll(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	reviews, err := h.reviewUsecase.GetAll(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         reviews,
		"totalRecords": len(reviews),
	})
}

// GetLatest returns the most recently created reviews
// GET /api/reviews/latest
func (h *ReviewHandler) GetLatest(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	reviews, err := h.reviewUsecase.GetLatest(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         reviews,
		"totalRecords": len(reviews),
	})
}

// GetGroupedByRatings returns rating buckets, optionally narrowed to one
// GET /api/reviews/grouped-by-ratings
// GET /api/reviews/grouped-by-ratings/:rating
func (h *ReviewHandler) GetGroupedByRatings(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	// Validation happens before any query executes
	var rating *int
	if ratingParam := c.Param("rating"); ratingParam != "" {
		value, err := strconv.Atoi(ratingParam)
		if err != nil {
			_ = c.Error(apperror.Validation("Rating must be a number"))
			return
		}
		rating = &value
	}

	count := usecase.DefaultGroupCount
	if countParam := c.Query("count"); countParam != "" {
		value, err := strconv.Atoi(countParam)
		if err != nil {
			_ = c.Error(apperror.Validation("Count must be a number"))
			return
		}
		count = value
	}

	groups, err := h.reviewUsecase.GroupedByRatings(userID, rating, count)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// Create creates a new review
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)

	var req reviewdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return
	}

	review, err := h.reviewUsecase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetByID returns a single review
// GET /api/reviews/:id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	review, err := h.reviewUsecase.GetByID(userID, reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Update partially updates a review
// PUT /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	var req reviewdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body"))
		return
	}

	review, err := h.reviewUsecase.Update(userID, reviewID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete deletes a review; already-deleted reviews still report success
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserIDKey)
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	if err := h.reviewUsecase.Delete(userID, reviewID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, true)
}

func reviewIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		_ = c.Error(apperror.Validation("Review ID must be a valid id"))
		return "", false
	}
	return id, true
}
