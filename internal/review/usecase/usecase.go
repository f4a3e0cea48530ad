package usecase

import (
	"context"

	imagedomain "watchlog-backend/internal/image/domain"
	reviewdomain "watchlog-backend/internal/review/domain"
	reviewdto "watchlog-backend/internal/review/dto"
)

// DefaultGroupCount caps each grouped-by-ratings bucket unless the
// request overrides it.
const DefaultGroupCount = 10

// PosterResolver resolves a poster for a title, best-effort. A nil
// image with nil error simply means "no poster".
type PosterResolver interface {
	Resolve(ctx context.Context, name string) (*imagedomain.Image, error)
}

// ReviewUsecase defines the interface for review business logic. Every
// operation is scoped to the authenticated user; ownership is enforced
// here, not in the store.
type ReviewUsecase interface {
	// Create validates and stores a new review, enriching it with a
	// poster when one can be resolved
	Create(ctx context.Context, userID string, req *reviewdto.CreateReviewRequest) (*reviewdomain.Review, error)

	// GetAll returns all reviews of the user, most recently updated first
	GetAll(userID string) ([]*reviewdomain.Review, error)

	// GetLatest returns the five most recently created reviews
	GetLatest(userID string) ([]*reviewdomain.Review, error)

	// GetByID returns a review after the ownership check
	GetByID(userID, reviewID string) (*reviewdomain.Review, error)

	// Update applies a partial update after the ownership check
	Update(userID, reviewID string, req *reviewdto.UpdateReviewRequest) (*reviewdomain.Review, error)

	// Delete removes a review; deleting an absent review still succeeds
	Delete(userID, reviewID string) error

	// DeleteAllForUser removes every review of a user (account deletion)
	DeleteAllForUser(userID string) error

	// GroupedByRatings buckets reviews by rating. rating selects a single
	// bucket (0 means "no rating"); nil selects all six.
	GroupedByRatings(userID string, rating *int, count int) ([]*reviewdomain.RatingGroup, error)
}
