package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/pkg/utils"
)

// InterfaceAuthService defines the admin authentication service
type InterfaceAuthService interface {
	FindAdminByEmail(email string) (*models.Admin, error)
	FindAdminByID(id uint) (*models.Admin, error)
	AuthenticateAdmin(email, password string) (*models.Admin, error)
	GenerateAuthResponse(admin *models.Admin) (*AuthResponse, error)
}

// AuthResponse is returned from signin and registration: a session token plus
// the sanitized account projection.
type AuthResponse struct {
	Token   string      `json:"token"`
	Account interface{} `json:"account"`
}

// AuthService authenticates administrators and issues their sessions
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewAuthService creates a new admin authentication service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// FindAdminByEmail looks up an admin by email
func (s *AuthService) FindAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// FindAdminByID looks up an admin by id
func (s *AuthService) FindAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// AuthenticateAdmin verifies admin credentials. A missing account and a wrong
// password both fail with ErrInvalidCredentials; a deactivated account fails
// with ErrAccountDeactivated regardless of password correctness.
func (s *AuthService) AuthenticateAdmin(email, password string) (*models.Admin, error) {
	admin, err := s.FindAdminByEmail(email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive {
		return nil, ErrAccountDeactivated
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	admin.Password = ""
	return admin, nil
}

// GenerateAuthResponse issues a session token for an authenticated admin
func (s *AuthService) GenerateAuthResponse(admin *models.Admin) (*AuthResponse, error) {
	token, err := s.JWT.GenerateToken(UserTypeAdmin, admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:   token,
		Account: admin.PublicView(),
	}, nil
}
