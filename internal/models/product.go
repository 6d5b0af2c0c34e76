package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Price       string `gorm:"type:decimal(10,2);not null" json:"price"`

	CategoryID *string   `gorm:"size:36" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	Image1 string `gorm:"size:500" json:"image1"`
	Image2 string `gorm:"size:500" json:"image2"`
	Image3 string `gorm:"size:500" json:"image3"`

	InStock bool `gorm:"default:true" json:"in_stock"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
