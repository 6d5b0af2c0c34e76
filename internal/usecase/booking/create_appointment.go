package booking

import (
	"context"
	"strings"
	"time"

	"github.com/clientedev/luccy/internal/audit"
	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
	"github.com/clientedev/luccy/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida e grava uma marcação vinda do site.
//
// A sequência é terminal em cada falha: formato → alinhamento → serviço →
// janela de atendimento → conflito. O teste de conflito roda de novo na
// transação de escrita (CreateAppointmentIfFree), nunca confia na lista
// de horários calculada momentos antes no cliente.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Estrutura: nome/telefone, hora HH:MM alinhada
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	if name == "" || phone == "" {
		return nil, httperr.ErrBusiness("invalid_format")
	}

	if err := domain.ValidateSlotTime(in.Time); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_format")
	}

	// --------------------------------------------------
	// 2. Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	durationMin := domain.ParseDurationText(service.Duration)

	// --------------------------------------------------
	// 3. Horário já passou?
	// --------------------------------------------------
	start, _ := domain.At(date, in.Time)
	if start.Before(timezone.Now()) {
		return nil, httperr.ErrBusiness("too_late")
	}

	// --------------------------------------------------
	// 4. Janela de atendimento do dia
	// --------------------------------------------------
	hours, err := uc.repo.ListOperatingHours(ctx, in.ServiceID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	windows := make([]domain.Window, 0, len(hours))
	for _, h := range hours {
		windows = append(windows, domain.Window{Start: h.StartTime, End: h.EndTime})
	}

	if !domain.WithinWindows(in.Time, durationMin, windows) {
		return nil, httperr.ErrBusiness("outside_operating_hours")
	}

	// --------------------------------------------------
	// 5. Conflito + gravação (atômico no repositório)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:      name,
		ClientPhone:     phone,
		ServiceID:       service.ID,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap, durationMin); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"service_id": ap.ServiceID,
			"date":       in.Date,
			"time":       in.Time,
		},
	})

	return ap, nil
}
