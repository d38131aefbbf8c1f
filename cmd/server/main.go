package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/app/routes"
	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/internal/infrastructure/database"
	"github.com/Shaon99/ota-backend/pkg/logger"
	"github.com/Shaon99/ota-backend/pkg/utils"
)

// @title           OTA Backend API
// @version         1.0
// @description     Multi-tenant backend for admin and B2B customer accounts
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// A missing .env is fine, variables may come from the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	if err := logger.SetupLogger(); err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration: %v", err)
		log.Fatalf("invalid configuration: %v", err)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("failed to connect to database: %v", err)
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		logger.Error("database migration failed: %v", err)
		log.Fatalf("database migration failed: %v", err)
	}

	if err := ensureAdminExists(db, cfg); err != nil {
		logger.Error("failed to seed admin account: %v", err)
		log.Fatalf("failed to seed admin account: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	addr := "0.0.0.0:" + cfg.ServerPort
	logger.Info("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped: %v", err)
		log.Fatalf("server stopped: %v", err)
	}
}

// autoMigrate keeps the schema in sync with the models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.B2BCustomer{},
	)
}

// ensureAdminExists seeds the default superadmin account on first start so a
// fresh deployment is never locked out.
func ensureAdminExists(db *gorm.DB, cfg *config.Config) error {
	var admin models.Admin
	err := db.Where("email = ?", cfg.DefaultAdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.DefaultAdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}

	admin = models.Admin{
		Name:     "Super Admin",
		Email:    cfg.DefaultAdminEmail,
		Password: hashed,
		Role:     models.AdminRoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded default admin account %s", cfg.DefaultAdminEmail)
	return nil
}
