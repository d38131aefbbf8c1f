package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Shaon99/ota-backend/internal/app/middleware"
	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/domain/services/container"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/pkg/utils"
)

type apiFixture struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    services.InterfaceJWTService
	admin  *models.Admin
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newAPIFixture stands up the customer routes against an in-memory database
// with one seeded admin. The cached GET routes carry the same cache
// middleware as the production router; rate limiting is left out.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// The fallback cache store is package-global; start from a clean slate
	middleware.InvalidateCache()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.B2BCustomer{}))

	cfg := &config.Config{
		JWTSecretKey:    "test-secret",
		JWTExpiresHours: 1,
		BcryptCost:      bcrypt.MinCost,
	}

	hash, err := utils.HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{
		Name: "Test Admin", Email: "admin@ota.com", Password: hash,
		Role: models.AdminRoleSuperAdmin, IsActive: true,
	}
	require.NoError(t, db.Create(admin).Error)

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	r := gin.New()
	v1 := r.Group("/api/v1")

	v1.POST("/auth/admin/signin", HandleAuthFunc(serviceContainer, "adminSignIn"))
	v1.POST("/auth/b2b/register", HandleB2BCustomerFunc(serviceContainer, "register"))
	v1.POST("/auth/b2b/signin", HandleB2BCustomerFunc(serviceContainer, "signIn"))

	adminB2B := v1.Group("/admin/b2b", middleware.RequireAdmin())
	adminB2B.POST("/customer", HandleB2BCustomerFunc(serviceContainer, "create"))
	adminB2B.GET("/customers",
		middleware.Cache(middleware.CacheConfig{Expiration: time.Minute}),
		HandleB2BCustomerFunc(serviceContainer, "getAll"))
	adminB2B.GET("/customer/:id",
		middleware.Cache(middleware.CacheConfig{Expiration: time.Minute}),
		HandleB2BCustomerFunc(serviceContainer, "getByID"))
	adminB2B.PUT("/customer/:id", HandleB2BCustomerFunc(serviceContainer, "update"))
	adminB2B.PUT("/customer/:id/password", HandleB2BCustomerFunc(serviceContainer, "updatePassword"))
	adminB2B.PUT("/customer/:id/status", HandleB2BCustomerFunc(serviceContainer, "updateStatus"))
	adminB2B.DELETE("/customer/:id", HandleB2BCustomerFunc(serviceContainer, "delete"))

	b2b := v1.Group("/b2b", middleware.RequireB2BCustomer())
	b2b.GET("/profile", HandleB2BCustomerFunc(serviceContainer, "getByID"))
	b2b.PUT("/profile", HandleB2BCustomerFunc(serviceContainer, "update"))
	b2b.PUT("/password", HandleB2BCustomerFunc(serviceContainer, "updatePassword"))

	return &apiFixture{
		router: r,
		db:     db,
		jwt:    services.NewJWTService(cfg),
		admin:  admin,
	}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (f *apiFixture) adminToken(t *testing.T) string {
	t.Helper()
	token, err := f.jwt.GenerateToken(services.UserTypeAdmin, f.admin.ID, f.admin.Email, f.admin.Role)
	require.NoError(t, err)
	return token
}

func registrationPayload(email, phone string) map[string]interface{} {
	return map[string]interface{}{
		"name":           "Rahim Travels",
		"email":          email,
		"phone":          phone,
		"password":       "secret123",
		"city":           "Dhaka",
		"thana":          "Gulshan",
		"address":        "House 12, Road 5, Gulshan-1",
		"c_name":         "Rahim Travels Ltd",
		"business_email": "info@rahimtravels.com",
		"c_phone_number": "01812345678",
		"c_email":        "support@rahimtravels.com",
	}
}

func TestRegisterB2BCustomer(t *testing.T) {
	f := newAPIFixture(t)

	w, env := f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	// Registration is fused with signin: the response carries a usable token
	var data struct {
		Token   string                 `json:"token"`
		Account map[string]interface{} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	assert.Equal(t, "owner@rahimtravels.com", data.Account["email"])
	assert.NotContains(t, data.Account, "password")

	claims, err := f.jwt.ExtractClaims(data.Token)
	require.NoError(t, err)
	assert.Equal(t, services.UserTypeB2BCustomer, claims.UserType)
}

func TestRegisterB2BCustomerValidation(t *testing.T) {
	f := newAPIFixture(t)

	payload := registrationPayload("owner@rahimtravels.com", "01712345678")
	payload["address"] = "too short"
	w, env := f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// A document field that is present but empty is rejected, absent is fine
	payload = registrationPayload("owner@rahimtravels.com", "01712345678")
	payload["trade_license"] = ""
	w, _ = f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterB2BCustomerDuplicateEmail(t *testing.T) {
	f := newAPIFixture(t)

	w, _ := f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)

	w, env := f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", registrationPayload("owner@rahimtravels.com", "01799999999"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "B2B customer with this email already exists", env.Message)
}

func TestAdminSignIn(t *testing.T) {
	f := newAPIFixture(t)

	w, env := f.do(t, http.MethodPost, "/api/v1/auth/admin/signin", "", gin.H{
		"email": "admin@ota.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = f.do(t, http.MethodPost, "/api/v1/auth/admin/signin", "", gin.H{
		"email": "admin@ota.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestAdminCustomerCRUD(t *testing.T) {
	f := newAPIFixture(t)
	token := f.adminToken(t)

	// Create
	w, env := f.do(t, http.MethodPost, "/api/v1/admin/b2b/customer", token, registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)

	var created models.B2BCustomerSummary
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	// Read
	w, env = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/b2b/customer/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Update
	w, env = f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/b2b/customer/%d", created.ID), token, gin.H{
		"name": "Rahim Travels International",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.B2BCustomerSummary
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Rahim Travels International", updated.Name)

	// Deactivate
	w, _ = f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/b2b/customer/%d/status", created.ID), token, gin.H{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Delete, then the detail route stops resolving
	w, _ = f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/b2b/customer/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/b2b/customer/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "B2B customer not found", env.Message)
}

func TestAdminCustomerList(t *testing.T) {
	f := newAPIFixture(t)
	token := f.adminToken(t)

	for i := 0; i < 3; i++ {
		w, _ := f.do(t, http.MethodPost, "/api/v1/admin/b2b/customer", token,
			registrationPayload(fmt.Sprintf("owner%d@rahimtravels.com", i), fmt.Sprintf("0170000000%d", i)))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, env := f.do(t, http.MethodGet, "/api/v1/admin/b2b/customers?page=1&limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Customers  []models.B2BCustomerSummary `json:"customers"`
		Pagination models.PaginationResult     `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Customers, 2)
	assert.Equal(t, int64(3), data.Pagination.Total)
	assert.Equal(t, int64(2), data.Pagination.Pages)
}

func TestChangePasswordMismatch(t *testing.T) {
	f := newAPIFixture(t)
	token := f.adminToken(t)

	w, _ := f.do(t, http.MethodPost, "/api/v1/admin/b2b/customer", token, registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)

	w, env := f.do(t, http.MethodPut, "/api/v1/admin/b2b/customer/1/password", token, gin.H{
		"currentPassword": "secret123",
		"newPassword":     "newsecret123",
		"confirmPassword": "different123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "New password and confirm password do not match", env.Message)
}

func TestB2BSelfServiceProfile(t *testing.T) {
	f := newAPIFixture(t)

	w, env := f.do(t, http.MethodPost, "/api/v1/auth/b2b/register", "", registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	// The profile routes ignore path ids and always act on the token holder
	w, env = f.do(t, http.MethodGet, "/api/v1/b2b/profile", data.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.B2BCustomerSummary
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "owner@rahimtravels.com", profile.Email)

	w, env = f.do(t, http.MethodPut, "/api/v1/b2b/profile", data.Token, gin.H{"city": "Sylhet"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = f.do(t, http.MethodPut, "/api/v1/b2b/password", data.Token, gin.H{
		"currentPassword": "secret123",
		"newPassword":     "newsecret123",
		"confirmPassword": "newsecret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Admin routes stay closed to a customer token
	w, _ = f.do(t, http.MethodGet, "/api/v1/admin/b2b/customers", data.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCachedReadsDropStaleDataAfterWrite(t *testing.T) {
	f := newAPIFixture(t)
	token := f.adminToken(t)

	w, env := f.do(t, http.MethodPost, "/api/v1/admin/b2b/customer", token, registrationPayload("owner@rahimtravels.com", "01712345678"))
	require.Equal(t, http.StatusOK, w.Code)
	var created models.B2BCustomerSummary
	require.NoError(t, json.Unmarshal(env.Data, &created))

	detailPath := fmt.Sprintf("/api/v1/admin/b2b/customer/%d", created.ID)

	// Prime the detail and list caches
	w, _ = f.do(t, http.MethodGet, detailPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/v1/admin/b2b/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// An update must show up on the next cached read
	w, _ = f.do(t, http.MethodPut, detailPath, token, gin.H{"name": "Rahim Travels International"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = f.do(t, http.MethodGet, detailPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.B2BCustomerSummary
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Rahim Travels International", fetched.Name)

	// A deleted customer must stop resolving immediately, cache included
	w, _ = f.do(t, http.MethodDelete, detailPath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = f.do(t, http.MethodGet, detailPath, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "B2B customer not found", env.Message)

	w, env = f.do(t, http.MethodGet, "/api/v1/admin/b2b/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listData struct {
		Pagination models.PaginationResult `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listData))
	assert.Equal(t, int64(0), listData.Pagination.Total)
}
