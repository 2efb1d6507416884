package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the session tokens. The seller ID
// travels in the registered Subject claim; SellerID is filled in after a
// successful parse.
type Claims struct {
	SellerID uuid.UUID `json:"-"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless bearer credentials: the server keeps no session table,
// so a token cannot be revoked before its expiry.
type TokenService interface {
	// GenerateToken creates a signed session token for the given seller.
	GenerateToken(sellerID uuid.UUID, username string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims. Any failure (malformed token, bad signature,
	// expired) is an error.
	ValidateToken(tokenString string) (*Claims, error)
}
