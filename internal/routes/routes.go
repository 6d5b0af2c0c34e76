package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/audit"
	"github.com/clientedev/luccy/internal/cache"
	"github.com/clientedev/luccy/internal/config"
	"github.com/clientedev/luccy/internal/handlers"
	infraRepo "github.com/clientedev/luccy/internal/infra/repository"
	"github.com/clientedev/luccy/internal/middleware"
	"github.com/clientedev/luccy/internal/storage"
	ucBooking "github.com/clientedev/luccy/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotsCache := cache.NewAvailability(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		slotsCache,
		availabilityUC,
		createAppointmentUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		slotsCache,
		updateAppointmentUC,
		deleteAppointmentUC,
	)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	serviceHoursHandler := handlers.NewServiceHoursHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	productHandler := handlers.NewProductHandler(db)
	testimonialHandler := handlers.NewTestimonialHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, uploader)
	settingsHandler := handlers.NewSettingsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/categories", categoryHandler.List)
		api.GET("/products", productHandler.List)
		api.GET("/gallery", galleryHandler.List)

		api.GET("/testimonials", testimonialHandler.ListApproved)
		api.POST("/testimonials", testimonialHandler.Create)

		api.GET("/availability", publicHandler.Availability)
		api.GET("/appointments", publicHandler.ListAppointments)
		api.POST("/appointments", publicHandler.CreateAppointment)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (ADMIN)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/me", authHandler.Me)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/service-hours", serviceHoursHandler.List)
			admin.POST("/service-hours", serviceHoursHandler.Create)
			admin.PUT("/service-hours/:id", serviceHoursHandler.Update)
			admin.DELETE("/service-hours/:id", serviceHoursHandler.Delete)

			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)

			admin.GET("/testimonials", testimonialHandler.ListAll)
			admin.PUT("/testimonials/:id", testimonialHandler.Moderate)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.POST("/gallery", galleryHandler.Create)
			admin.POST("/gallery/upload", galleryHandler.Upload)
			admin.PUT("/gallery/:id", galleryHandler.Update)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/settings", settingsHandler.List)
			admin.POST("/settings", settingsHandler.Upsert)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments", appointmentHandler.List)
			admin.PUT("/appointments/:id", appointmentHandler.Update)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)
		}
	}
}
