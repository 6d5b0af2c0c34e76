package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Janela de atendimento de um serviço em um dia da semana.
// Várias linhas por (serviço, dia) são permitidas (turnos quebrados).
type ServiceHours struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServiceID string  `gorm:"size:36;not null;index:idx_service_hours_day" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// 0=domingo .. 6=sábado
	DayOfWeek int `gorm:"not null;index:idx_service_hours_day" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
}

func (sh *ServiceHours) BeforeCreate(tx *gorm.DB) error {
	if sh.ID == "" {
		sh.ID = uuid.NewString()
	}
	return nil
}
