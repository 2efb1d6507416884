package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SellerUsecase defines the read operations over the seller directory.
type SellerUsecase interface {
	// List returns every seller together with the items they own.
	List(ctx context.Context) ([]*entity.Seller, error)
}
