package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *BookingGormRepository) ListOperatingHours(
	ctx context.Context,
	serviceID string,
	dayOfWeek int,
) ([]models.ServiceHours, error) {

	var hours []models.ServiceHours
	if err := r.db.WithContext(ctx).
		Where(
			"service_id = ? AND day_of_week = ? AND is_available = true",
			serviceID, dayOfWeek,
		).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}

	return hours, nil
}

// --------------------------------------------------
// Ledger (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListDayAppointments(
	ctx context.Context,
	serviceID string,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"service_id = ? AND appointment_date = ? AND status <> ?",
			serviceID, date.Format("2006-01-02"), string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Ledger (write)
// --------------------------------------------------

// CreateAppointmentIfFree fecha a janela de corrida do agendamento:
// o lock consultivo por (serviço, dia) serializa o check-then-insert de
// escritores concorrentes sem travar a tabela. O índice único parcial em
// (service_id, appointment_date, appointment_time) é a segunda cerca para
// colisões de horário exato.
func (r *BookingGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {

	day := ap.AppointmentDate.Format("2006-01-02")
	lockKey := ap.ServiceID + ":" + day

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))", lockKey,
		).Error; err != nil {
			return err
		}

		var existing []models.Appointment
		if err := tx.
			Preload("Service").
			Where(
				"service_id = ? AND appointment_date = ? AND status <> ?",
				ap.ServiceID, day, string(domain.StatusCancelled),
			).
			Find(&existing).Error; err != nil {
			return err
		}

		start, ok := domain.At(ap.AppointmentDate, ap.AppointmentTime)
		if !ok {
			return httperr.ErrBusiness("invalid_format")
		}

		for _, other := range existing {
			otherStart, ok := domain.At(ap.AppointmentDate, other.AppointmentTime)
			if !ok {
				continue
			}

			otherMin := domain.ParseDurationText(other.Service.Duration)
			if domain.Overlaps(start, durationMin, otherStart, otherMin) {
				return httperr.ErrBusiness("slot_conflict")
			}
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_conflict")
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
