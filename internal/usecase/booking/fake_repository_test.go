package booking

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

// fakeRepo guarda tudo em memória com a mesma semântica do repositório
// real: ledger filtrado por status, recheck de conflito serializado na
// escrita.
type fakeRepo struct {
	mu sync.Mutex

	services     map[string]*models.Service
	hours        []models.ServiceHours
	appointments []*models.Appointment

	hoursErr  error
	ledgerErr error
	nextID    int
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{services: make(map[string]*models.Service)}
}

func (r *fakeRepo) addService(id, duration string) *models.Service {
	s := &models.Service{ID: id, Name: "Serviço " + id, Duration: duration}
	r.services[id] = s
	return s
}

func (r *fakeRepo) addHours(serviceID string, dayOfWeek int, start, end string) {
	r.hours = append(r.hours, models.ServiceHours{
		ServiceID:   serviceID,
		DayOfWeek:   dayOfWeek,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	})
}

func (r *fakeRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) ListOperatingHours(ctx context.Context, serviceID string, dayOfWeek int) ([]models.ServiceHours, error) {
	if r.hoursErr != nil {
		return nil, r.hoursErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ServiceHours
	for _, h := range r.hours {
		if h.ServiceID == serviceID && h.DayOfWeek == dayOfWeek && h.IsAvailable {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListDayAppointments(ctx context.Context, serviceID string, date time.Time) ([]models.Appointment, error) {
	if r.ledgerErr != nil {
		return nil, r.ledgerErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	day := date.Format("2006-01-02")
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ServiceID != serviceID || ap.AppointmentDate.Format("2006-01-02") != day {
			continue
		}
		if !domain.Status(ap.Status).Blocks() {
			continue
		}
		cp := *ap
		if s, ok := r.services[ap.ServiceID]; ok {
			cp.Service = *s
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment, durationMin int) error {
	if r.ledgerErr != nil {
		return r.ledgerErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start, ok := domain.At(ap.AppointmentDate, ap.AppointmentTime)
	if !ok {
		return httperr.ErrBusiness("invalid_format")
	}

	day := ap.AppointmentDate.Format("2006-01-02")
	for _, other := range r.appointments {
		if other.ServiceID != ap.ServiceID || other.AppointmentDate.Format("2006-01-02") != day {
			continue
		}
		if !domain.Status(other.Status).Blocks() {
			continue
		}
		otherStart, ok := domain.At(other.AppointmentDate, other.AppointmentTime)
		if !ok {
			continue
		}
		otherDur := domain.DefaultDurationMinutes
		if s, found := r.services[other.ServiceID]; found {
			otherDur = domain.ParseDurationText(s.Duration)
		}
		if domain.Overlaps(start, durationMin, otherStart, otherDur) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	r.nextID++
	if ap.ID == "" {
		ap.ID = "ap-" + strconv.Itoa(r.nextID)
	}
	cp := *ap
	r.appointments = append(r.appointments, &cp)
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			cp := *ap
			r.appointments[i] = &cp
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments {
		if existing.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}
