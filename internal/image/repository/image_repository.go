package repository

import (
	"errors"
	"time"

	imagedomain "watchlog-backend/internal/image/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageRepository defines the interface for poster cache access
type ImageRepository interface {
	Create(image *imagedomain.Image) error
	FindByName(name string) (*imagedomain.Image, error)
}

// imageRepository implements ImageRepository interface
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new instance of imageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{
		db: db,
	}
}

func (r *imageRepository) Create(image *imagedomain.Image) error {
	image.ID = uuid.New().String()
	image.CreatedAt = time.Now()
	image.UpdatedAt = time.Now()
	return r.db.Create(image).Error
}

func (r *imageRepository) FindByName(name string) (*imagedomain.Image, error) {
	var image imagedomain.Image
	err := r.db.Where("name = ?", name).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}
