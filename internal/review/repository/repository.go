package repository

import reviewdomain "watchlog-backend/internal/review/domain"

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create creates a new review
	Create(review *reviewdomain.Review) error

	// FindByID finds a review by id, with its poster preloaded
	FindByID(id string) (*reviewdomain.Review, error)

	// FindByUserAndName finds a user's review of a title (exact match)
	FindByUserAndName(userID, name string) (*reviewdomain.Review, error)

	// FindAllByUser returns all reviews of a user, most recently
	// updated first
	FindAllByUser(userID string) ([]*reviewdomain.Review, error)

	// FindLatestByUser returns the newest reviews of a user by creation
	// time
	FindLatestByUser(userID string, limit int) ([]*reviewdomain.Review, error)

	// FindByUserAndRating returns a user's reviews with the given
	// rating; nil selects unrated reviews
	FindByUserAndRating(userID string, rating *int, limit int) ([]*reviewdomain.Review, error)

	// Update updates an existing review
	Update(review *reviewdomain.Review) error

	// Delete deletes a user's review by id; deleting a missing review is
	// not an error
	Delete(userID, id string) error

	// DeleteAllByUser removes every review of a user
	DeleteAllByUser(userID string) error
}
