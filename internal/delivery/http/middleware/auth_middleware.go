// Package middleware contains the HTTP middleware chain for the API.
package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeySellerID = "sellerID"
	ContextKeyUsername = "username"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. Every failure
// shape, whether the header is missing, the token malformed, the signature
// bad or the expiry passed, gets the identical 401 response so callers
// learn nothing about which check tripped.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return unauthenticated(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthenticated(c)
		}

		// Make the caller's identity available to handlers.
		c.Set(ContextKeySellerID, claims.SellerID)
		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}

// The rejection body is sourced from the domain error so the guard and the
// error handler can never drift apart.
func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
}
