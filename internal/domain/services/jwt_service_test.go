package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(UserTypeAdmin, 7, "admin@ota.com", "superadmin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, UserTypeAdmin, claims.UserType)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@ota.com", claims.Email)
	assert.Equal(t, "superadmin", claims.Role)
	assert.Equal(t, "ota-backend", claims.Issuer)
}

func TestJWTServiceExpiredToken(t *testing.T) {
	svc := &JWTService{
		secretKey: "test-secret",
		issuer:    "ota-backend",
		ttl:       -time.Minute,
	}

	token, err := svc.GenerateToken(UserTypeB2BCustomer, 3, "owner@rahimtravels.com", "b2b_admin")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTServiceWrongSecret(t *testing.T) {
	issuing := NewJWTService(newTestConfig())
	token, err := issuing.GenerateToken(UserTypeAdmin, 1, "admin@ota.com", "admin")
	require.NoError(t, err)

	verifying := &JWTService{secretKey: "other-secret", issuer: "ota-backend", ttl: time.Hour}
	_, err = verifying.ExtractClaims(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTServiceTamperedToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())
	token, err := svc.GenerateToken(UserTypeAdmin, 1, "admin@ota.com", "admin")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ExtractClaims("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTServiceUnknownUserType(t *testing.T) {
	svc := NewJWTService(newTestConfig())
	token, err := svc.(*JWTService).GenerateToken("machine", 1, "svc@ota.com", "robot")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
