package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// RegisterInput carries the data required to create a new seller account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Location string `json:"location" validate:"max=255"`
}

// LoginInput carries the credentials presented by a seller.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	Seller *entity.Seller
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	AccessToken string
}

// AuthUsecase defines the operations for seller registration and login.
type AuthUsecase interface {
	// Register creates a new seller account with a hashed password.
	// Returns ErrUsernameConflict when the username is already taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	// Login verifies the credentials and issues an access token.
	// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
