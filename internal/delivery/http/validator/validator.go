// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures surface as the
// application's validation error so the error handler maps them to 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
