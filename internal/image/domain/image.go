package domain

import "time"

// Image is a cached poster, keyed by the lowercased title it was fetched
// for. Images are shared across reviews and never deleted with them.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Img       string    `json:"img" gorm:"type:text;not null"` // base64-encoded
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
