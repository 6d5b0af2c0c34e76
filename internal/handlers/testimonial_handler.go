package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

type TestimonialHandler struct {
	db *gorm.DB
}

func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

type TestimonialRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     *int   `json:"rating"`
	Service    string `json:"service"`
}

type TestimonialModerationRequest struct {
	Approved *bool `json:"approved"`
}

// --------- público ---------

func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.
		Where("approved = true").
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Erro ao carregar depoimentos.")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Create é público: qualquer cliente envia, entra reprovado até moderação.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rating := 5
	if req.Rating != nil && *req.Rating >= 1 && *req.Rating <= 5 {
		rating = *req.Rating
	}

	testimonial := models.Testimonial{
		ClientName: req.ClientName,
		Content:    req.Content,
		Rating:     rating,
		Service:    req.Service,
		Approved:   false,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Erro ao enviar depoimento.")
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// --------- admin ---------

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Erro ao carregar depoimentos.")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Moderate(c *gin.Context) {
	id := c.Param("id")

	var testimonial models.Testimonial
	if err := h.db.First(&testimonial, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "testimonial_not_found", "Depoimento não encontrado.")
		return
	}

	var req TestimonialModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Approved != nil {
		testimonial.Approved = *req.Approved
	}

	if err := h.db.Save(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_update_testimonial", "Erro ao atualizar depoimento.")
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_testimonial", "Erro ao deletar depoimento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "testimonial_not_found", "Depoimento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
