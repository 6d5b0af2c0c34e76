package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	// Price é texto de exibição ("A partir de R$ 80"), nunca usado em cálculo.
	Price string `gorm:"size:100" json:"price"`

	// Duration é texto livre digitado pelo admin ("1h30", "90min", "2h").
	// O motor de agenda converte via booking.ParseDurationText.
	Duration string `gorm:"size:20" json:"duration"`

	Featured bool `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
