package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/pkg/utils"
)

// newTestDB opens an isolated in-memory database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.B2BCustomer{}))
	return db
}

// newTestConfig uses the cheapest bcrypt cost to keep the suite fast
func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret",
		JWTExpiresHours: 1,
		BcryptCost:      bcrypt.MinCost,
	}
}

// seedAdmin inserts an admin with a hashed password
func seedAdmin(t *testing.T, db *gorm.DB, email, password string, isActive bool) *models.Admin {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.Admin{
		Name:     "Test Admin",
		Email:    email,
		Password: hash,
		Role:     models.AdminRoleAdmin,
		IsActive: isActive,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

// newCustomerFixture builds a valid customer with a plaintext password, ready
// for CreateB2BCustomer.
func newCustomerFixture(email, phone string) *models.B2BCustomer {
	return &models.B2BCustomer{
		Name:     "Rahim Travels",
		Email:    email,
		Phone:    phone,
		Password: "secret123",
		IsActive: true,

		City:    "Dhaka",
		Thana:   "Gulshan",
		Address: "House 12, Road 5, Gulshan-1",

		CName:         "Rahim Travels Ltd",
		BusinessEmail: "info@rahimtravels.com",
		CPhoneNumber:  "01812345678",
		CEmail:        "support@rahimtravels.com",
	}
}
