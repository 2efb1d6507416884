package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	txManager repository.TransactionManager
	itemRepo  repository.ItemRepository
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ItemRepo  repository.ItemRepository
	Logger    *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager: params.TxManager,
		itemRepo:  params.ItemRepo,
		logger:    params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a new item owned by the authenticated seller. The seller
// lookup and the insert share a transaction so a concurrently deleted
// account cannot end up owning a fresh item.
func (srv *itemService) Create(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateItemInput) (*entity.Item, error) {
	var createdItem *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SellerRepo().FindByID(ctx, sellerID); err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to verify item owner")
		}

		item := &entity.Item{
			Name:        input.Name,
			Description: input.Description,
			SellerID:    sellerID,
		}
		if err := repoFactory.ItemRepo().Create(ctx, item); err != nil {
			return err
		}

		createdItem = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create item", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Item created", slog.Any("itemID", createdItem.ID), slog.Any("sellerID", sellerID))

	return createdItem, nil
}

// List returns every item in the marketplace.
func (srv *itemService) List(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// GetByID returns a single item.
func (srv *itemService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to get item")
	}

	return item, nil
}

// Update applies a partial update to an item owned by the caller. The item
// row is locked for the whole transaction, so the ownership check and the
// write cannot be split by a concurrent request. Existence is checked before
// ownership: an unknown item is a 404 no matter who asks.
func (srv *itemService) Update(ctx context.Context, id uuid.UUID, sellerID uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	var updatedItem *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ItemRepo()

		item, err := itemRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound
			}

			return errors.Wrap(err, "failed to load item for update")
		}

		if item.SellerID != sellerID {
			return domainerrors.ErrForbidden
		}

		// nil means "field absent from the request", so an omitted field
		// keeps its stored value and an empty patch is a no-op write.
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Description != nil {
			item.Description = *input.Description
		}

		if err := itemRepo.Update(ctx, item); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound
			}

			return err
		}

		updatedItem = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update item", slog.Any("itemID", id), slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Item updated", slog.Any("itemID", id))

	return updatedItem, nil
}

// Delete removes an item owned by the caller, under the same lock and
// check order as Update.
func (srv *itemService) Delete(ctx context.Context, id uuid.UUID, sellerID uuid.UUID) (*entity.Item, error) {
	var deletedItem *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ItemRepo()

		item, err := itemRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound
			}

			return errors.Wrap(err, "failed to load item for delete")
		}

		if item.SellerID != sellerID {
			return domainerrors.ErrForbidden
		}

		if err := itemRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound
			}

			return err
		}

		deletedItem = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete item", slog.Any("itemID", id), slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Item deleted", slog.Any("itemID", id))

	return deletedItem, nil
}
