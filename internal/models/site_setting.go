package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiteSetting struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
