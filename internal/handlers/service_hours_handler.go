package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

type ServiceHoursHandler struct {
	db *gorm.DB
}

func NewServiceHoursHandler(db *gorm.DB) *ServiceHoursHandler {
	return &ServiceHoursHandler{db: db}
}

type ServiceHoursRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	DayOfWeek   *int   `json:"day_of_week" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

func (r *ServiceHoursRequest) validate() string {
	if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
		return "invalid_day_of_week"
	}
	if err := domain.ValidateSlotTime(r.StartTime); httperr.IsBusiness(err, "invalid_format") {
		return "invalid_start_time"
	}
	if err := domain.ValidateSlotTime(r.EndTime); httperr.IsBusiness(err, "invalid_format") {
		return "invalid_end_time"
	}
	if r.StartTime >= r.EndTime {
		return "start_after_end"
	}
	return ""
}

func (h *ServiceHoursHandler) List(c *gin.Context) {
	serviceID := c.Query("service_id")
	if serviceID == "" {
		httperr.BadRequest(c, "missing_service_id", "Serviço obrigatório.")
		return
	}

	var hours []models.ServiceHours
	if err := h.db.
		Where("service_id = ?", serviceID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_service_hours", "Erro ao carregar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *ServiceHoursHandler) Create(c *gin.Context) {
	var req ServiceHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code := req.validate(); code != "" {
		httperr.BadRequest(c, code, "Horário inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", req.ServiceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	hours := models.ServiceHours{
		ServiceID:   req.ServiceID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: available,
	}

	if err := h.db.Create(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service_hours", "Erro ao salvar horário.")
		return
	}

	c.JSON(http.StatusCreated, hours)
}

func (h *ServiceHoursHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var hours models.ServiceHours
	if err := h.db.First(&hours, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_hours_not_found", "Horário não encontrado.")
		return
	}

	var req ServiceHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code := req.validate(); code != "" {
		httperr.BadRequest(c, code, "Horário inválido.")
		return
	}

	hours.ServiceID = req.ServiceID
	hours.DayOfWeek = *req.DayOfWeek
	hours.StartTime = req.StartTime
	hours.EndTime = req.EndTime
	if req.IsAvailable != nil {
		hours.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service_hours", "Erro ao salvar horário.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *ServiceHoursHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.ServiceHours{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service_hours", "Erro ao deletar horário.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_hours_not_found", "Horário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
