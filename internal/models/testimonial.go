package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Testimonial struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Content    string `gorm:"size:1000;not null" json:"content"`
	Rating     int    `gorm:"default:5" json:"rating"`
	Service    string `gorm:"size:100" json:"service"`

	// Depoimentos entram pendentes e só aparecem no site após aprovação.
	Approved bool `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
