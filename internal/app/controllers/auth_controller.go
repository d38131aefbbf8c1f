package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Shaon99/ota-backend/internal/app/middleware"
	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/domain/services/container"
	"github.com/Shaon99/ota-backend/internal/error/code"
	"github.com/Shaon99/ota-backend/internal/error/response"
	"github.com/Shaon99/ota-backend/pkg/logger"
)

// InterfaceAuthController defines the authentication controller interface
type InterfaceAuthController interface {
	AdminSignIn()
	AdminLogout()
	GetAdminProfile()
}

// AuthController handles admin authentication requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new authentication controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// SignInRequest is the credential payload for both account kinds
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@ota.com"`
	Password string `json:"password" binding:"required,min=6" example:"admin123"`
}

// HandleAuthFunc returns a gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "adminSignIn":
			controller.AdminSignIn()
		case "adminLogout":
			controller.AdminLogout()
		case "getAdminProfile":
			controller.GetAdminProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// AdminSignIn authenticates an admin and issues a session token
// @Summary      Admin Sign In
// @Description  Authenticate an administrator and return a JWT session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Sign in credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/admin/signin [post]
func (c *AuthController) AdminSignIn() {
	var req SignInRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err.Error())
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	admin, err := authService.AuthenticateAdmin(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
		case errors.Is(err, services.ErrAccountDeactivated):
			response.Fail(c.Ctx, code.ErrAccountDeactivated, nil)
		default:
			logger.Error("admin signin failed: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	authResponse, err := authService.GenerateAuthResponse(admin)
	if err != nil {
		logger.Error("failed to generate admin session: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, authResponse, "Login successful")
}

// AdminLogout acknowledges logout; session tokens are discarded client side
// @Summary      Admin Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/admin/logout [post]
// @Security     BearerAuth
func (c *AuthController) AdminLogout() {
	response.Success(c.Ctx, nil, "Logout successful")
}

// GetAdminProfile returns the authenticated admin's account
// @Summary      Admin Profile
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/admin/profile [get]
// @Security     BearerAuth
func (c *AuthController) GetAdminProfile() {
	user, ok := middleware.GetCurrentUser(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	admin, err := authService.FindAdminByID(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAccountNotFound, nil)
			return
		}
		logger.Error("failed to load admin profile: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"admin": admin}, "Profile retrieved successfully")
}
