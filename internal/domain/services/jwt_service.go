package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
)

// Session user types. The claims carry an explicit discriminator so the
// middleware never has to infer the account kind from the claim shape.
const (
	UserTypeAdmin       = "admin"
	UserTypeB2BCustomer = "b2b_customer"
)

// Token verification failures the middleware must distinguish.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// InterfaceJWTService defines the token codec
type InterfaceJWTService interface {
	GenerateToken(userType string, userID uint, email, role string) (string, error)
	ExtractClaims(tokenString string) (*SessionClaims, error)
}

// SessionClaims is the payload embedded in every issued session token
type SessionClaims struct {
	UserType string `json:"user_type"`
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens
type JWTService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "ota-backend",
		ttl:       time.Duration(cfg.JWTExpiresHours) * time.Hour,
	}
}

// GenerateToken issues an HS256 token for the given account
func (s *JWTService) GenerateToken(userType string, userID uint, email, role string) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		UserType: userType,
		UserID:   userID,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ExtractClaims verifies a token and returns its claims. Expired tokens fail
// with ErrTokenExpired; any other verification or decode failure fails closed
// with ErrTokenInvalid.
func (s *JWTService) ExtractClaims(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserType != UserTypeAdmin && claims.UserType != UserTypeB2BCustomer {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
