package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is a domain-specific error returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the standard operations for item persistence.
type ItemRepository interface {
	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDForUpdate retrieves an item while holding a row lock until the
	// surrounding transaction ends. It must only be called on a repository
	// bound to a transaction; the lock makes the read-check-write sequence of
	// ownership-guarded mutations atomic.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindAll retrieves every item.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// Create persists a new item entity to the storage.
	Create(ctx context.Context, item *entity.Item) error

	// Update persists the mutable fields (name, description) of an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
