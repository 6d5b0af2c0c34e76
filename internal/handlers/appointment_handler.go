package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/cache"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/httpresp"
	"github.com/clientedev/luccy/internal/middleware"
	"github.com/clientedev/luccy/internal/models"
	"github.com/clientedev/luccy/internal/timezone"
	ucBooking "github.com/clientedev/luccy/internal/usecase/booking"
)

// ======================================================
// HANDLER (painel admin)
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	slots *cache.Availability

	updateUC *ucBooking.UpdateAppointment
	deleteUC *ucBooking.DeleteAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	slots *cache.Availability,
	updateUC *ucBooking.UpdateAppointment,
	deleteUC *ucBooking.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		slots:    slots,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ======================================================
// LIST (ledger completo, com serviço, para o calendário)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Preload("Service")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("appointment_date = ?", dayKey(date))
	}

	if monthStr := c.Query("month"); monthStr != "" {
		yearStr := c.Query("year")

		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 2000 || year > 2100 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}

		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location())
		end := start.AddDate(0, 1, 0)
		q = q.Where(
			"appointment_date >= ? AND appointment_date < ?",
			start.Format("2006-01-02"), end.Format("2006-01-02"),
		)
	}

	var aps []models.Appointment
	if err := q.Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE (status / notas — sem edição de horário)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		ucBooking.UpdateAppointmentInput{
			AppointmentID: id,
			Actor:         username,
			Status:        req.Status,
			Notes:         req.Notes,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	// mudar status troca o que bloqueia horário → invalida o dia no cache
	h.slots.Invalidate(c.Request.Context(), ap.ServiceID, ap.AppointmentDate.Format("2006-01-02"))

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE (hard delete)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	ap, err := h.deleteUC.Execute(c.Request.Context(), id, username)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao deletar agendamento.")
		return
	}

	h.slots.Invalidate(c.Request.Context(), ap.ServiceID, ap.AppointmentDate.Format("2006-01-02"))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
