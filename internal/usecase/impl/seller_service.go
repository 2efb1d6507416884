package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	sellerRepo repository.SellerRepository
	logger     *slog.Logger
}

// SellerServiceParams holds dependencies for sellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	SellerRepo repository.SellerRepository
	Logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo: params.SellerRepo,
		logger:     params.Logger,
	}
}

// List returns every seller with their items. Password hashes stay on the
// entity here; the delivery layer strips them when shaping the response.
func (srv *sellerService) List(ctx context.Context) ([]*entity.Seller, error) {
	sellers, err := srv.sellerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}
