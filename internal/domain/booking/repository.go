package booking

import (
	"context"
	"time"

	"github.com/clientedev/luccy/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Operating hours --------
	ListOperatingHours(
		ctx context.Context,
		serviceID string,
		dayOfWeek int,
	) ([]models.ServiceHours, error)

	// -------- Ledger (read) --------
	ListDayAppointments(
		ctx context.Context,
		serviceID string,
		date time.Time,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// -------- Ledger (write) --------

	// CreateAppointmentIfFree refaz o teste de conflito e insere na mesma
	// transação, serializada por (serviço, data). Devolve slot_conflict
	// quando o intervalo já está ocupado.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
		durationMin int,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error
}
