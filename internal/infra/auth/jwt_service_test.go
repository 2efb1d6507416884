package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_very_long_for_testing"

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	sellerID := uuid.New()
	username := "seller1"

	token, err := jwtService.GenerateToken(sellerID, username)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, sellerID, claims.SellerID)
	assert.Equal(t, username, claims.Username)
	assert.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)

	// Fixed 24-hour validity window.
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService := newTestJWTService(t)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "a-completely-different-secret"},
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), "seller1")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	// Sign a token with the same secret but an expiry in the past.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Username: "seller1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNonHMACSigningMethod(t *testing.T) {
	jwtService := newTestJWTService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Username: "seller1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}
