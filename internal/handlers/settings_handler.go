package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// List devolve todas as configurações como mapa chave/valor.
func (h *SettingsHandler) List(c *gin.Context) {
	var settings []models.SiteSetting
	if err := h.db.Find(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Erro ao carregar configurações.")
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, out)
}

type SettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// Upsert grava uma configuração, criando ou atualizando pela chave.
func (h *SettingsHandler) Upsert(c *gin.Context) {
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	setting := models.SiteSetting{Key: req.Key, Value: req.Value}
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		httperr.Internal(c, "failed_to_save_setting", "Erro ao salvar configuração.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": req.Key, "value": req.Value})
}
