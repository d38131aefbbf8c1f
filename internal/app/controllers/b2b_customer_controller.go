package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shaon99/ota-backend/internal/app/middleware"
	"github.com/Shaon99/ota-backend/internal/domain/models"
	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/domain/services/container"
	"github.com/Shaon99/ota-backend/internal/error/code"
	"github.com/Shaon99/ota-backend/internal/error/response"
	"github.com/Shaon99/ota-backend/pkg/logger"
)

// InterfaceB2BCustomerController defines the B2B customer controller interface
type InterfaceB2BCustomerController interface {
	Register()
	SignIn()
	Create()
	GetAll()
	GetByID()
	Update()
	UpdatePassword()
	UpdateStatus()
	Delete()
}

// B2BCustomerController handles B2B customer requests
type B2BCustomerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewB2BCustomerController creates a new B2B customer controller
func NewB2BCustomerController(ctx *gin.Context, container *container.ServiceContainer) *B2BCustomerController {
	return &B2BCustomerController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateB2BCustomerRequest carries the registration and admin-create payload.
// Document fields are optional references; supplying one that is empty is a
// validation error rather than a silent null.
type CreateB2BCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Rahim Travels"`
	Email    string `json:"email" binding:"required,email,max=255" example:"owner@rahimtravels.com"`
	Phone    string `json:"phone" binding:"required,min=10,max=20" example:"01712345678"`
	Password string `json:"password" binding:"required,min=6,max=128" example:"secret1"`
	IsActive *bool  `json:"isActive"`

	// Personal information
	City    string `json:"city" binding:"required,min=2,max=100" example:"Dhaka"`
	Thana   string `json:"thana" binding:"required,min=2,max=100" example:"Gulshan"`
	Address string `json:"address" binding:"required,min=10,max=500" example:"House 12, Road 5, Gulshan-1"`

	// Company information
	CName         string `json:"c_name" binding:"required,min=2,max=200" example:"Rahim Travels Ltd"`
	BusinessEmail string `json:"business_email" binding:"required,email,max=255" example:"info@rahimtravels.com"`
	CPhoneNumber  string `json:"c_phone_number" binding:"required,min=10,max=20" example:"01812345678"`
	CEmail        string `json:"c_email" binding:"required,email,max=255" example:"support@rahimtravels.com"`

	// Documents (optional file references)
	TradeLicense             *string `json:"trade_license" binding:"omitempty,min=1,max=500"`
	CivilAviationCertificate *string `json:"civil_aviation_certificate" binding:"omitempty,min=1,max=500"`
	NationalIDFront          *string `json:"national_id_front" binding:"omitempty,min=1,max=500"`
	NationalIDBack           *string `json:"national_id_back" binding:"omitempty,min=1,max=500"`
	AddressProof             *string `json:"address_proof" binding:"omitempty,min=1,max=500"`

	// Additional information
	HeardAbout *string `json:"heard_about" binding:"omitempty,min=2,max=200"`
}

// UpdateB2BCustomerRequest carries a partial profile update. Password is not
// accepted here; the dedicated password endpoint is the only write path.
type UpdateB2BCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,min=10,max=20"`
	City    *string `json:"city" binding:"omitempty,min=2,max=100"`
	Thana   *string `json:"thana" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address" binding:"omitempty,min=10,max=500"`

	CName         *string `json:"c_name" binding:"omitempty,min=2,max=200"`
	BusinessEmail *string `json:"business_email" binding:"omitempty,email,max=255"`
	CPhoneNumber  *string `json:"c_phone_number" binding:"omitempty,min=10,max=20"`
	CEmail        *string `json:"c_email" binding:"omitempty,email,max=255"`

	TradeLicense             *string `json:"trade_license" binding:"omitempty,min=1,max=500"`
	CivilAviationCertificate *string `json:"civil_aviation_certificate" binding:"omitempty,min=1,max=500"`
	NationalIDFront          *string `json:"national_id_front" binding:"omitempty,min=1,max=500"`
	NationalIDBack           *string `json:"national_id_back" binding:"omitempty,min=1,max=500"`
	AddressProof             *string `json:"address_proof" binding:"omitempty,min=1,max=500"`

	HeardAbout *string `json:"heard_about" binding:"omitempty,min=2,max=200"`
}

// updates builds the column map for the partial update
func (r *UpdateB2BCustomerRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	set("name", r.Name)
	set("email", r.Email)
	set("phone", r.Phone)
	set("city", r.City)
	set("thana", r.Thana)
	set("address", r.Address)
	set("c_name", r.CName)
	set("business_email", r.BusinessEmail)
	set("c_phone_number", r.CPhoneNumber)
	set("c_email", r.CEmail)
	set("trade_license", r.TradeLicense)
	set("civil_aviation_certificate", r.CivilAviationCertificate)
	set("national_id_front", r.NationalIDFront)
	set("national_id_back", r.NationalIDBack)
	set("address_proof", r.AddressProof)
	set("heard_about", r.HeardAbout)
	return updates
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=6,max=128"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,min=8,max=128"`
}

// UpdateStatusRequest toggles an account's active flag
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// HandleB2BCustomerFunc returns a gin handler dispatching to the controller
func HandleB2BCustomerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewB2BCustomerController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "signIn":
			controller.SignIn()
		case "create":
			controller.Create()
		case "getAll":
			controller.GetAll()
		case "getByID":
			controller.GetByID()
		case "update":
			controller.Update()
		case "updatePassword":
			controller.UpdatePassword()
		case "updateStatus":
			controller.UpdateStatus()
		case "delete":
			controller.Delete()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// service returns the B2B customer service from the container
func (c *B2BCustomerController) service() services.InterfaceB2BCustomerService {
	return c.Container.GetService("b2b_customer").(services.InterfaceB2BCustomerService)
}

// targetCustomerID resolves the customer the request operates on: B2B
// customers always act on their own account, admins address one by path id.
func (c *B2BCustomerController) targetCustomerID() (uint, bool) {
	if user, ok := middleware.GetCurrentUser(c.Ctx); ok && user.Type == services.UserTypeB2BCustomer {
		return user.ID, true
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid customer id", nil)
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors onto the error-code catalogue
func (c *B2BCustomerController) respondError(err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		response.Fail(c.Ctx, code.ErrCustomerNotFound, nil)
	case errors.Is(err, services.ErrEmailAlreadyExists):
		response.Fail(c.Ctx, code.ErrEmailAlreadyExists, nil)
	case errors.Is(err, services.ErrPhoneAlreadyExists):
		response.Fail(c.Ctx, code.ErrPhoneAlreadyExists, nil)
	case errors.Is(err, services.ErrCurrentPasswordIncorrect):
		response.Fail(c.Ctx, code.ErrCurrentPasswordIncorrect, nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
	case errors.Is(err, services.ErrAccountDeactivated):
		response.Fail(c.Ctx, code.ErrAccountDeactivated, nil)
	default:
		logger.Error("b2b customer operation failed: %v", err)
		response.ServerError(c.Ctx)
	}
}

// buildCustomer converts the create payload to the model
func (r *CreateB2BCustomerRequest) buildCustomer() *models.B2BCustomer {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &models.B2BCustomer{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		IsActive: isActive,

		City:    r.City,
		Thana:   r.Thana,
		Address: r.Address,

		CName:         r.CName,
		BusinessEmail: r.BusinessEmail,
		CPhoneNumber:  r.CPhoneNumber,
		CEmail:        r.CEmail,

		TradeLicense:             r.TradeLicense,
		CivilAviationCertificate: r.CivilAviationCertificate,
		NationalIDFront:          r.NationalIDFront,
		NationalIDBack:           r.NationalIDBack,
		AddressProof:             r.AddressProof,

		HeardAbout: r.HeardAbout,
	}
}

// 1. Register creates a B2B customer account and signs it in. Registration
// and signin are fused: the response already carries a session token.
// @Summary      B2B Customer Registration
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body CreateB2BCustomerRequest true "Registration payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/b2b/register [post]
func (c *B2BCustomerController) Register() {
	var req CreateB2BCustomerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	customer := req.buildCustomer()
	if err := c.service().CreateB2BCustomer(customer); err != nil {
		c.respondError(err)
		return
	}

	authResponse, err := c.service().GenerateAuthResponse(customer)
	if err != nil {
		logger.Error("failed to generate b2b session: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, authResponse, "B2B customer registered successfully")
}

// 2. SignIn authenticates a B2B customer and issues a session token
// @Summary      B2B Customer Sign In
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Sign in credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/b2b/signin [post]
func (c *B2BCustomerController) SignIn() {
	var req SignInRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	customer, err := c.service().AuthenticateB2BCustomer(req.Email, req.Password)
	if err != nil {
		c.respondError(err)
		return
	}

	authResponse, err := c.service().GenerateAuthResponse(customer)
	if err != nil {
		logger.Error("failed to generate b2b session: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, authResponse, "B2B Login successful")
}

// 3. Create adds a B2B customer on behalf of an admin, without signing it in
// @Summary      Create B2B Customer
// @Tags         B2BCustomer
// @Accept       json
// @Produce      json
// @Param        request body CreateB2BCustomerRequest true "Customer payload"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/b2b/customer [post]
// @Security     BearerAuth
func (c *B2BCustomerController) Create() {
	var req CreateB2BCustomerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	customer := req.buildCustomer()
	if err := c.service().CreateB2BCustomer(customer); err != nil {
		c.respondError(err)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, customer, "B2B customer created successfully")
}

// 4. GetAll lists B2B customers with pagination and search
// @Summary      List B2B Customers
// @Tags         B2BCustomer
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        limit query int false "Page size, defaults to 10"
// @Param        search query string false "Search term (name, email, phone)"
// @Success      200  {object}  response.Response
// @Router       /admin/b2b/customers [get]
// @Security     BearerAuth
func (c *B2BCustomerController) GetAll() {
	var pq models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pq); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}
	search := c.Ctx.Query("search")

	customers, pagination, err := c.service().GetAllB2BCustomers(pq.Page, pq.Limit, search)
	if err != nil {
		c.respondError(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"customers":  customers,
		"pagination": pagination,
	}, "B2B customers fetched successfully")
}

// 5. GetByID returns one customer: admins address any live account by path
// id, B2B customers always read their own profile.
// @Summary      Get B2B Customer
// @Tags         B2BCustomer
// @Produce      json
// @Param        id path int false "Customer ID (admin only)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/b2b/customer/{id} [get]
// @Security     BearerAuth
func (c *B2BCustomerController) GetByID() {
	id, ok := c.targetCustomerID()
	if !ok {
		return
	}

	customer, err := c.service().GetB2BCustomerByID(id)
	if err != nil {
		c.respondError(err)
		return
	}

	response.Success(c.Ctx, customer, "B2B customer fetched successfully")
}

// 6. Update applies a partial profile update
// @Summary      Update B2B Customer
// @Tags         B2BCustomer
// @Accept       json
// @Produce      json
// @Param        id path int false "Customer ID (admin only)"
// @Param        request body UpdateB2BCustomerRequest true "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/b2b/customer/{id} [put]
// @Security     BearerAuth
func (c *B2BCustomerController) Update() {
	id, ok := c.targetCustomerID()
	if !ok {
		return
	}

	var req UpdateB2BCustomerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	customer, err := c.service().UpdateB2BCustomer(id, req.updates())
	if err != nil {
		c.respondError(err)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, customer, "B2B customer updated successfully")
}

// 7. UpdatePassword verifies the current password and sets a new one
// @Summary      Change B2B Customer Password
// @Tags         B2BCustomer
// @Accept       json
// @Produce      json
// @Param        id path int false "Customer ID (admin only)"
// @Param        request body ChangePasswordRequest true "Password change payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /admin/b2b/customer/{id}/password [put]
// @Security     BearerAuth
func (c *B2BCustomerController) UpdatePassword() {
	id, ok := c.targetCustomerID()
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		response.Fail(c.Ctx, code.ErrPasswordMismatch, nil)
		return
	}

	if err := c.service().UpdateB2BCustomerPassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		c.respondError(err)
		return
	}

	response.Success(c.Ctx, nil, "Password updated successfully")
}

// 8. UpdateStatus toggles a customer's active flag
// @Summary      Update B2B Customer Status
// @Tags         B2BCustomer
// @Accept       json
// @Produce      json
// @Param        id path int true "Customer ID"
// @Param        request body UpdateStatusRequest true "Status payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/b2b/customer/{id}/status [put]
// @Security     BearerAuth
func (c *B2BCustomerController) UpdateStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid customer id", nil)
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	customer, err := c.service().UpdateB2BCustomerStatus(uint(id), *req.IsActive)
	if err != nil {
		c.respondError(err)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, customer, "B2B customer status updated successfully")
}

// 9. Delete soft deletes a customer; the record stays for audit but no read
// path resolves it afterwards.
// @Summary      Delete B2B Customer
// @Tags         B2BCustomer
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/b2b/customer/{id} [delete]
// @Security     BearerAuth
func (c *B2BCustomerController) Delete() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid customer id", nil)
		return
	}

	if err := c.service().DeleteB2BCustomer(uint(id)); err != nil {
		c.respondError(err)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, nil, "B2B customer deleted successfully")
}
