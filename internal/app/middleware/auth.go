package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/error/code"
	"github.com/Shaon99/ota-backend/internal/error/response"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
)

// ContextUserKey is the gin context key the resolved account is stored under
const ContextUserKey = "currentUser"

// CurrentUser is the account attached to the request context after
// authentication.
type CurrentUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"`
}

var (
	jwtService  services.InterfaceJWTService
	authService services.InterfaceAuthService
	b2bService  services.InterfaceB2BCustomerService
)

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg)
	authService = services.NewAuthService(db, cfg, jwtService)
	b2bService = services.NewB2BCustomerService(db, cfg, jwtService)
}

// extractToken strips the "Bearer " prefix from the authorization header
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// authenticate validates the Bearer token and re-resolves the account from
// the database, so deactivation and soft deletion revoke access immediately
// instead of waiting for token expiry. Returns false after aborting the
// request on any failure.
func authenticate(c *gin.Context) (*CurrentUser, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Access token required")
		return nil, false
	}

	tokenString := extractToken(authHeader)
	if tokenString == "" {
		response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Authorization header format must be Bearer {token}")
		return nil, false
	}

	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, services.ErrTokenExpired) {
			response.AbortFailWithMessage(c, code.ErrTokenExpired, "Token expired")
			return nil, false
		}
		response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Invalid token")
		return nil, false
	}

	switch claims.UserType {
	case services.UserTypeAdmin:
		admin, err := authService.FindAdminByID(claims.UserID)
		if err != nil || !admin.IsActive {
			response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Invalid or inactive admin account")
			return nil, false
		}
		user := &CurrentUser{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  admin.Role,
			Type:  services.UserTypeAdmin,
		}
		return user, true

	case services.UserTypeB2BCustomer:
		customer, err := b2bService.GetB2BCustomerByID(claims.UserID)
		if err != nil || !customer.IsActive {
			response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Invalid or inactive customer account")
			return nil, false
		}
		user := &CurrentUser{
			ID:    customer.ID,
			Email: customer.Email,
			Role:  customer.Role,
			Type:  services.UserTypeB2BCustomer,
		}
		return user, true
	}

	// Unreachable for tokens we issued; fail closed anyway.
	response.AbortFailWithMessage(c, code.ErrTokenInvalid, "Invalid token payload")
	return nil, false
}

// RequireAuth authenticates either account kind
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c)
		if !ok {
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin authenticates and gates the route to admin accounts
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c)
		if !ok {
			return
		}
		if user.Type != services.UserTypeAdmin {
			response.AbortFail(c, code.ErrForbidden)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireB2BCustomer authenticates and gates the route to B2B customers
func RequireB2BCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c)
		if !ok {
			return
		}
		if user.Type != services.UserTypeB2BCustomer {
			response.AbortFail(c, code.ErrForbidden)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// GetCurrentUser reads the resolved account from the gin context
func GetCurrentUser(c *gin.Context) (*CurrentUser, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*CurrentUser)
	return user, ok
}
