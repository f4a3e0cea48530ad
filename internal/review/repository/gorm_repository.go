package repository

import (
	"errors"
	"time"

	reviewdomain "watchlog-backend/internal/review/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormReviewRepository implements ReviewRepository using GORM
type gormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM-based ReviewRepository
func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(review *reviewdomain.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()
	return r.db.Create(review).Error
}

func (r *gormReviewRepository) FindByID(id string) (*reviewdomain.Review, error) {
	var review reviewdomain.Review
	err := r.db.Preload("Image").Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) FindByUserAndName(userID, name string) (*reviewdomain.Review, error) {
	var review reviewdomain.Review
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) FindAllByUser(userID string) ([]*reviewdomain.Review, error) {
	var reviews []*reviewdomain.Review
	err := r.db.Preload("Image").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) FindLatestByUser(userID string, limit int) ([]*reviewdomain.Review, error) {
	var reviews []*reviewdomain.Review
	err := r.db.Preload("Image").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) FindByUserAndRating(userID string, rating *int, limit int) ([]*reviewdomain.Review, error) {
	var reviews []*reviewdomain.Review
	query := r.db.Preload("Image").Where("user_id = ?", userID)
	if rating == nil {
		query = query.Where("rating IS NULL")
	} else {
		query = query.Where("rating = ?", *rating)
	}
	err := query.Order("updated_at DESC").Limit(limit).Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) Update(review *reviewdomain.Review) error {
	review.UpdatedAt = time.Now()
	// Save with Select("*") so cleared optional fields persist as NULL
	return r.db.Model(review).Select("*").Omit("created_at").Updates(review).Error
}

func (r *gormReviewRepository) Delete(userID, id string) error {
	return r.db.Where("user_id = ? AND id = ?", userID, id).Delete(&reviewdomain.Review{}).Error
}

func (r *gormReviewRepository) DeleteAllByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&reviewdomain.Review{}).Error
}
