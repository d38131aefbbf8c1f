package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
	"github.com/Shaon99/ota-backend/pkg/utils"
)

// InterfaceB2BCustomerService defines the B2B customer service
type InterfaceB2BCustomerService interface {
	GetAllB2BCustomers(page, limit int, search string) ([]models.B2BCustomerSummary, models.PaginationResult, error)
	GetB2BCustomerByID(id uint) (*models.B2BCustomer, error)
	CreateB2BCustomer(customer *models.B2BCustomer) error
	UpdateB2BCustomer(id uint, updates map[string]interface{}) (*models.B2BCustomer, error)
	UpdateB2BCustomerPassword(id uint, currentPassword, newPassword string) error
	UpdateB2BCustomerStatus(id uint, isActive bool) (*models.B2BCustomer, error)
	DeleteB2BCustomer(id uint) error
	AuthenticateB2BCustomer(email, password string) (*models.B2BCustomer, error)
	GenerateAuthResponse(customer *models.B2BCustomer) (*AuthResponse, error)
}

// B2BCustomerService provides B2B customer account management. Every query
// goes through gorm's soft-delete scope, so deleted customers are invisible
// to lookups, uniqueness checks and authentication alike.
type B2BCustomerService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewB2BCustomerService creates a new B2B customer service
func NewB2BCustomerService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceB2BCustomerService {
	return &B2BCustomerService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// GetAllB2BCustomers lists live customers, newest first, with optional
// case-insensitive search over name, email and phone.
func (s *B2BCustomerService) GetAllB2BCustomers(page, limit int, search string) ([]models.B2BCustomerSummary, models.PaginationResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var customers []models.B2BCustomer
	var total int64

	query := s.DB.Model(&models.B2BCustomer{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	summaries := make([]models.B2BCustomerSummary, 0, len(customers))
	for i := range customers {
		summaries = append(summaries, customers[i].Summary())
	}

	return summaries, models.NewPaginationResult(page, limit, total), nil
}

// GetB2BCustomerByID fetches a live customer by id
func (s *B2BCustomerService) GetB2BCustomerByID(id uint) (*models.B2BCustomer, error) {
	var customer models.B2BCustomer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// emailInUse reports whether a live customer other than excludeID holds email
func (s *B2BCustomerService) emailInUse(email string, excludeID uint) (bool, error) {
	var count int64
	query := s.DB.Model(&models.B2BCustomer{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// phoneInUse reports whether a live customer other than excludeID holds phone
func (s *B2BCustomerService) phoneInUse(phone string, excludeID uint) (bool, error) {
	var count int64
	query := s.DB.Model(&models.B2BCustomer{}).Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateB2BCustomer persists a new customer. Email and phone must be unique
// among live accounts; the password is hashed before it is stored and blanked
// on the returned value.
func (s *B2BCustomerService) CreateB2BCustomer(customer *models.B2BCustomer) error {
	taken, err := s.emailInUse(customer.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailAlreadyExists
	}

	taken, err = s.phoneInUse(customer.Phone, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrPhoneAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(customer.Password, s.Config.BcryptCost)
	if err != nil {
		return err
	}
	customer.Password = hashedPassword
	customer.Role = models.B2BCustomerRole

	// The pre-checks above are the uniqueness guard: email and phone carry
	// plain indexes so a deleted customer's values stay reusable, which means
	// the database cannot reject a duplicate here.
	if err := s.DB.Create(customer).Error; err != nil {
		return err
	}

	customer.Password = ""
	return nil
}

// UpdateB2BCustomer applies a partial update. Password changes are silently
// stripped; use UpdateB2BCustomerPassword instead. Email and phone changes
// re-validate uniqueness against other live accounts.
func (s *B2BCustomerService) UpdateB2BCustomer(id uint, updates map[string]interface{}) (*models.B2BCustomer, error) {
	customer, err := s.GetB2BCustomerByID(id)
	if err != nil {
		return nil, err
	}

	delete(updates, "password")

	if email, ok := updates["email"].(string); ok && email != customer.Email {
		taken, err := s.emailInUse(email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailAlreadyExists
		}
	}

	if phone, ok := updates["phone"].(string); ok && phone != customer.Phone {
		taken, err := s.phoneInUse(phone, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneAlreadyExists
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(customer).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetB2BCustomerByID(id)
}

// UpdateB2BCustomerPassword re-hashes and persists a new password after
// verifying the current one.
func (s *B2BCustomerService) UpdateB2BCustomerPassword(id uint, currentPassword, newPassword string) error {
	customer, err := s.GetB2BCustomerByID(id)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, customer.Password) {
		return ErrCurrentPasswordIncorrect
	}

	hashedPassword, err := utils.HashPassword(newPassword, s.Config.BcryptCost)
	if err != nil {
		return err
	}

	return s.DB.Model(customer).Update("password", hashedPassword).Error
}

// UpdateB2BCustomerStatus toggles IsActive without touching other fields
func (s *B2BCustomerService) UpdateB2BCustomerStatus(id uint, isActive bool) (*models.B2BCustomer, error) {
	customer, err := s.GetB2BCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(customer).Update("is_active", isActive).Error; err != nil {
		return nil, err
	}

	return s.GetB2BCustomerByID(id)
}

// DeleteB2BCustomer soft deletes a customer. gorm sets DeletedAt, so the
// account disappears from all subsequent lookups and its email and phone
// become reusable.
func (s *B2BCustomerService) DeleteB2BCustomer(id uint) error {
	customer, err := s.GetB2BCustomerByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(customer).Error
}

// AuthenticateB2BCustomer verifies customer credentials. Soft-deleted
// accounts are invisible here, so they fail exactly like unknown emails with
// ErrInvalidCredentials; deactivated accounts fail with ErrAccountDeactivated
// regardless of password correctness.
func (s *B2BCustomerService) AuthenticateB2BCustomer(email, password string) (*models.B2BCustomer, error) {
	var customer models.B2BCustomer
	if err := s.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !customer.IsActive {
		return nil, ErrAccountDeactivated
	}

	if !utils.CheckPasswordHash(password, customer.Password) {
		return nil, ErrInvalidCredentials
	}

	customer.Password = ""
	return &customer, nil
}

// GenerateAuthResponse issues a session token for an authenticated customer
func (s *B2BCustomerService) GenerateAuthResponse(customer *models.B2BCustomer) (*AuthResponse, error) {
	token, err := s.JWT.GenerateToken(UserTypeB2BCustomer, customer.ID, customer.Email, customer.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:   token,
		Account: customer.PublicView(),
	}, nil
}
