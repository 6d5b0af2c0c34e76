package booking

import (
	"context"

	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	hours, err := uc.repo.ListOperatingHours(ctx, in.ServiceID, weekday)
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return []string{}, nil
	}

	windows := make([]domain.Window, 0, len(hours))
	for _, h := range hours {
		windows = append(windows, domain.Window{
			Start: h.StartTime,
			End:   h.EndTime,
		})
	}

	appointments, err := uc.repo.ListDayAppointments(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}

	// Cada agendamento existente bloqueia pela duração do PRÓPRIO serviço,
	// não pela do serviço consultado.
	busy := make([]domain.Busy, 0, len(appointments))
	for _, ap := range appointments {
		start, ok := domain.At(in.Date, ap.AppointmentTime)
		if !ok {
			continue
		}
		busy = append(busy, domain.Busy{
			Start:       start,
			DurationMin: domain.ParseDurationText(ap.Service.Duration),
		})
	}

	durationMin := domain.ParseDurationText(service.Duration)

	return domain.BuildSlots(in.Date, windows, durationMin, busy, timezone.Now()), nil
}
