package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/httperr"
	"github.com/clientedev/luccy/internal/models"
	"github.com/clientedev/luccy/internal/storage"
)

type GalleryHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewGalleryHandler(db *gorm.DB, uploader *storage.Uploader) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader}
}

type GalleryImageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url" binding:"required"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

// --------- público ---------

func (h *GalleryHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if c.Query("featured") == "true" {
		q = q.Where("featured = true")
	}

	var images []models.GalleryImage
	if err := q.Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Erro ao carregar galeria.")
		return
	}

	c.JSON(http.StatusOK, images)
}

// --------- admin ---------

func (h *GalleryHandler) Create(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	image := models.GalleryImage{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Featured: req.Featured,
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery_image", "Erro ao adicionar imagem.")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// Upload recebe multipart, converte para webp e grava no bucket.
// O registro na galeria é criado em seguida com a URL resultante.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled", "Upload de imagens não configurado.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar imagem.")
		return
	}

	image := models.GalleryImage{
		Title:    c.PostForm("title"),
		ImageURL: url,
		Category: c.PostForm("category"),
		Featured: c.PostForm("featured") == "true",
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery_image", "Erro ao salvar imagem.")
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var image models.GalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "gallery_image_not_found", "Imagem não encontrada.")
		return
	}

	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	image.Title = req.Title
	image.ImageURL = req.ImageURL
	image.Category = req.Category
	image.Featured = req.Featured

	if err := h.db.Save(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_update_gallery_image", "Erro ao atualizar imagem.")
		return
	}

	c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.GalleryImage{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_gallery_image", "Erro ao deletar imagem.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "gallery_image_not_found", "Imagem não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
