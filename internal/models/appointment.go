package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	ServiceID string  `gorm:"size:36;not null;index:idx_appointments_service_date" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	AppointmentDate time.Time `gorm:"type:date;not null;index:idx_appointments_service_date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"` // HH:MM, minuto 00 ou 30

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (ap *Appointment) BeforeCreate(tx *gorm.DB) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	return nil
}
