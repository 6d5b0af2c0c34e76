package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clientedev/luccy/internal/config"
	"github.com/clientedev/luccy/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Service{},
		&models.ServiceHours{},
		&models.Appointment{},
		&models.Testimonial{},
		&models.GalleryImage{},
		&models.SiteSetting{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Segunda barreira contra double-booking, além do advisory lock:
	// agendamentos cancelados não contam, por isso o índice é parcial.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_appointment_slot
        ON appointments (service_id, appointment_date, appointment_time)
        WHERE status <> 'cancelled'
    `)

	seed(db, cfg)

	return db
}

// seed garante admin e categorias padrão em instalações novas.
func seed(db *gorm.DB, cfg *config.Config) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount == 0 && cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed: failed to hash admin password: %v", err)
		} else {
			admin := models.User{
				Username:     cfg.AdminUsername,
				PasswordHash: string(hash),
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("seed: failed to create admin user: %v", err)
			} else {
				log.Printf("seed: admin user %q created", cfg.AdminUsername)
			}
		}
	}

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)

	if categoryCount == 0 {
		defaults := []models.Category{
			{Name: "Cílios", Slug: "cilios"},
			{Name: "Maquiagem", Slug: "maquiagem"},
			{Name: "Cabelo", Slug: "cabelo"},
			{Name: "Unhas", Slug: "unhas"},
			{Name: "Roupas", Slug: "roupas"},
		}
		if err := db.Create(&defaults).Error; err != nil {
			log.Printf("seed: failed to create default categories: %v", err)
		}
	}
}
