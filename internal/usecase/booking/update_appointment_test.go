package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientedev/luccy/internal/audit"
	"github.com/clientedev/luccy/internal/httperr"
)

func seedAppointment(t *testing.T, repo *fakeRepo) string {
	t.Helper()
	repo.addService("svc-1", "1h")
	openAllDay(repo, "svc-1")

	uc := NewCreateAppointment(repo, audit.NewDispatcher(nil))
	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	return ap.ID
}

func TestUpdateAppointment_Status(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewUpdateAppointment(repo, audit.NewDispatcher(nil))

	confirmed := "confirmed"
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: id,
		Actor:         "admin",
		Status:        &confirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	stored, err := repo.GetAppointmentByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestUpdateAppointment_NotesOnly(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewUpdateAppointment(repo, audit.NewDispatcher(nil))

	notes := "cliente avisou atraso"
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: id,
		Actor:         "admin",
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente avisou atraso", ap.Notes)
	assert.Equal(t, "pending", ap.Status) // status intocado
}

func TestUpdateAppointment_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewUpdateAppointment(repo, audit.NewDispatcher(nil))

	bogus := "archived"
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: id,
		Actor:         "admin",
		Status:        &bogus,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateAppointment(repo, audit.NewDispatcher(nil))

	confirmed := "confirmed"
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ghost",
		Actor:         "admin",
		Status:        &confirmed,
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewDeleteAppointment(repo, audit.NewDispatcher(nil))

	deleted, err := uc.Execute(context.Background(), id, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)

	_, err = repo.GetAppointmentByID(context.Background(), id)
	assert.Error(t, err)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), "ghost", "admin")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
