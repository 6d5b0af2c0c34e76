package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `gorm:"size:100" json:"title"`
	ImageURL string `gorm:"size:500;not null" json:"image_url"`

	// 'makeup', 'hair', 'nails', 'lashes'
	Category string `gorm:"size:50" json:"category"`
	Featured bool   `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
