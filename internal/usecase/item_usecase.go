package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateItemInput carries the data required to list a new item.
type CreateItemInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// UpdateItemInput carries a partial update for an existing item.
// Pointer fields distinguish "field absent" from "field set to empty";
// only fields that are present in the request are applied. A present but
// empty name is rejected, a present but empty description is honored.
type UpdateItemInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description"`
}

// ItemUsecase defines the operations for managing marketplace items.
// Mutating operations take the authenticated seller's ID and enforce
// that only the owning seller may change an item.
type ItemUsecase interface {
	Create(ctx context.Context, sellerID uuid.UUID, input *CreateItemInput) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, id uuid.UUID, sellerID uuid.UUID, input *UpdateItemInput) (*entity.Item, error)
	Delete(ctx context.Context, id uuid.UUID, sellerID uuid.UUID) (*entity.Item, error)
}
