package domain

import (
	"time"

	imagedomain "watchlog-backend/internal/image/domain"
)

// Review is a single user's take on a movie or show. A user can hold at
// most one review per title; the composite unique index backs the
// duplicate check done in the usecase.
type Review struct {
	ID         string             `json:"id" gorm:"primaryKey"`
	UserID     string             `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_user_name"`
	Name       string             `json:"name" gorm:"not null;uniqueIndex:idx_reviews_user_name"`
	Review     string             `json:"review" gorm:"type:text;not null"`
	Rating     *int               `json:"rating"`
	URL        *string            `json:"url"`
	WatchAgain *bool              `json:"watchAgain"`
	ImageID    *string            `json:"imageId"` // weak reference to the poster cache
	Image      *imagedomain.Image `json:"image,omitempty" gorm:"foreignKey:ImageID"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// RatingGroup is one bucket of the grouped-by-ratings query. Rating is
// nil for the "no rating" bucket.
type RatingGroup struct {
	Rating  *int      `json:"rating"`
	Reviews []*Review `json:"reviews"`
}
