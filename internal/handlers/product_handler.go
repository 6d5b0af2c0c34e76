package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price" binding:"required"`
	CategoryID  *string `json:"category_id"`
	Image1      string  `json:"image1"`
	Image2      string  `json:"image2"`
	Image3      string  `json:"image3"`
	InStock     *bool   `json:"in_stock"`
}

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Preload("Category")

	if category := c.Query("category"); category != "" {
		q = q.Where("category_id = ?", category).Order("name ASC")
	} else {
		q = q.Order("created_at DESC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao carregar produtos.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image1:      req.Image1,
		Image2:      req.Image2,
		Image3:      req.Image3,
		InStock:     req.InStock == nil || *req.InStock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.Image1 = req.Image1
	product.Image2 = req.Image2
	product.Image3 = req.Image3
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao deletar produto.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
