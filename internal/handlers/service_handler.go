package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/audit"
	domain "github.com/clientedev/luccy/internal/domain/booking"
	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/middleware"
	"github.com/clientedev/luccy/internal/models"
	"github.com/clientedev/luccy/internal/timezone"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Featured    bool   `json:"featured"`
}

// --------- público ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao carregar serviços.")
		return
	}
	c.JSON(http.StatusOK, services)
}

// --------- admin ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Featured:    req.Featured,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    username,
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.Duration = req.Duration
	service.Featured = req.Featured

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    username,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusOK, service)
}

// Delete recusa remover serviço com marcações futuras não canceladas
// (restrict-on-delete: nada de referências penduradas no ledger). As
// janelas de atendimento caem junto via FK em cascata.
func (h *ServiceHandler) Delete(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	today := timezone.Now().Format("2006-01-02")

	var pending int64
	if err := h.db.Model(&models.Appointment{}).
		Where(
			"service_id = ? AND appointment_date >= ? AND status <> ?",
			id, today, string(domain.StatusCancelled),
		).
		Count(&pending).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao deletar serviço.")
		return
	}

	if pending > 0 {
		httperr.Conflict(c, "service_has_appointments", "Serviço possui agendamentos futuros.")
		return
	}

	// sem marcação futura ativa: histórico e cancelados caem junto,
	// nada fica apontando para um serviço inexistente
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).
			Delete(&models.ServiceHours{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao deletar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    username,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
