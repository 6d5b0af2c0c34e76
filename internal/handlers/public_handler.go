package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/cache"
	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/dto"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
	ucBooking "github.com/clientedev/luccy/internal/usecase/booking"
	"github.com/clientedev/luccy/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db    *gorm.DB
	slots *cache.Availability

	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	slots *cache.Availability,
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		slots:          slots,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"appointment_time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	serviceID := c.Query("service_id")
	dateStr := c.Query("date")

	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Serviço e data obrigatórios.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if hit, ok := h.slots.Get(c.Request.Context(), serviceID, dayKey(date)); ok {
		c.JSON(http.StatusOK, gin.H{"date": dayKey(date), "slots": hit})
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: serviceID,
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}

		// Falha de leitura degrada para "sem horários": mostrar vazio é
		// mais seguro que mostrar disponibilidade errada ou derrubar a página.
		log.Println("availability degraded to empty:", err)
		c.JSON(http.StatusOK, gin.H{
			"date":    dayKey(date),
			"slots":   []string{},
			"warning": "availability_unavailable",
		})
		return
	}

	h.slots.Set(c.Request.Context(), serviceID, dayKey(date), slots)

	c.JSON(http.StatusOK, gin.H{"date": dayKey(date), "slots": slots})
}

// ======================================================
// CREATE APPOINTMENT
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhonePlausible(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		domain.CreateInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.slots.Invalidate(c.Request.Context(), ap.ServiceID, dayKey(ap.AppointmentDate))

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// DAY LEDGER (visão pública, sem dados do cliente)
// ======================================================

func (h *PublicHandler) ListAppointments(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("service")

	q := h.db.Model(&models.Appointment{}).
		Where("status <> ?", string(domain.StatusCancelled))

	if dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("appointment_date = ?", dayKey(date))
	}

	if serviceID != "" {
		q = q.Where("service_id = ?", serviceID)
	}

	var aps []models.Appointment
	if err := q.Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	out := make([]dto.PublicAppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.PublicAppointmentDTO{
			ServiceID:       ap.ServiceID,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_format":
		httperr.BadRequest(c, "invalid_format", "Data ou hora inválida.")
	case "invalid_alignment":
		httperr.BadRequest(c, "invalid_alignment", "O horário deve começar em hora cheia ou meia hora.")
	case "service_not_found":
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case "too_late":
		httperr.BadRequest(c, "too_late", "Esse horário já passou.")
	case "outside_operating_hours":
		httperr.BadRequest(c, "outside_operating_hours", "Fora do horário de atendimento.")
	case "slot_conflict":
		httperr.Conflict(c, "slot_conflict", "Esse horário acabou de ser reservado. Escolha outro.")
	default:
		httperr.Internal(c, "storage_failure", "Erro ao criar agendamento.")
	}
}
