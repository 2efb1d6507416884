package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// itemRepository implements the domain.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// FindByID retrieves a single item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindByIDForUpdate retrieves an item under SELECT ... FOR UPDATE. The row
// lock is held until the surrounding transaction ends, which makes the
// ownership check and the subsequent write a single atomic step.
func (repo *itemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&itemM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to lock item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindAll retrieves every item.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemMs []*model.ItemModel
	if err := repo.db.WithContext(ctx).Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new item entity to the database.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		// The FK on seller_id backs the explicit seller-existence check in the
		// use case against a concurrently deleted seller.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSellerNotFound.WrapMessage("owning seller does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrItemCreationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update persists the mutable fields of an existing item.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(itemM).
		Select("name", "description").
		Updates(model.ItemModel{Name: item.Name, Description: item.Description})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes an item by its ID.
func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		SellerID:    data.SellerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		SellerID:    data.SellerID,
	}
}
