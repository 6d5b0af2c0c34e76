package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientedev/luccy/internal/audit"
	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/timezone"
)

// dia fixo bem no futuro, para o corte de horário passado nunca disparar
const testDay = "2030-06-10"

func openAllDay(repo *fakeRepo, serviceID string) {
	d, _ := time.ParseInLocation("2006-01-02", testDay, timezone.Location())
	repo.addHours(serviceID, int(d.Weekday()), "09:00", "21:00")
}

func validInput() domain.CreateInput {
	return domain.CreateInput{
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 98888-7777",
		ServiceID:   "svc-1",
		Date:        testDay,
		Time:        "10:00",
		Notes:       "primeira vez",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "Maria Silva", ap.ClientName)
	assert.Equal(t, "svc-1", ap.ServiceID)
	assert.Equal(t, testDay, ap.AppointmentDate.Format("2006-01-02"))
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "primeira vez", ap.Notes)
}

func TestCreateAppointment_BlankNameOrPhone(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	in := validInput()
	in.ClientName = "   "
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))

	in = validInput()
	in.ClientPhone = ""
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

func TestCreateAppointment_BadTime(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	in := validInput()
	in.Time = "10h30"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))

	in = validInput()
	in.Time = "10:15"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_alignment"))
}

func TestCreateAppointment_BadDate(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	in := validInput()
	in.Date = "10/06/2030"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_format"))
}

func TestCreateAppointment_ServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_PastSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	in := validInput()
	in.Date = "2020-01-06"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_late"))
}

func TestCreateAppointment_OutsideOperatingHours(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")

	d, _ := time.ParseInLocation("2006-01-02", testDay, timezone.Location())
	repo.addHours("svc-1", int(d.Weekday()), "09:00", "12:00")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	// 11:30 + 1h estoura o fechamento de 12:00
	in := validInput()
	in.Time = "11:30"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_operating_hours"))

	// dia da semana sem janela nenhuma
	repo2 := newFakeRepo()
	repo2.addService("svc-1", "1h")
	uc2 := NewCreateAppointment(repo2, audit.NewDispatcher(nil))

	_, err = uc2.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "outside_operating_hours"))
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// mesma hora
	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// meia hora depois ainda cruza o 10:00–11:00
	in := validInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// 11:00 encosta mas não cruza
	in = validInput()
	in.Time = "11:00"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	ok, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, repo.appointments, 1)
}
