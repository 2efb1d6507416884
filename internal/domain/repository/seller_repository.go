// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is a domain-specific error returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
// The application layer depends on this interface, not the concrete implementation.
type SellerRepository interface {
	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByUsername retrieves a single seller by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Seller, error)

	// FindAll retrieves every seller together with the items they own.
	FindAll(ctx context.Context) ([]*entity.Seller, error)

	// Create persists a new seller entity to the storage.
	Create(ctx context.Context, seller *entity.Seller) error
}
