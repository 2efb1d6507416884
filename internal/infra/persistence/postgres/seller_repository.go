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
)

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a single seller by their unique ID.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByUsername retrieves a single seller by their unique username.
func (repo *sellerRepository) FindByUsername(ctx context.Context, username string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).First(&sellerM, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by username")
	}

	return toSellerDomain(&sellerM), nil
}

// FindAll retrieves every seller with the items they own.
func (repo *sellerRepository) FindAll(ctx context.Context) ([]*entity.Seller, error) {
	var sellerMs []*model.SellerModel
	if err := repo.db.WithContext(ctx).Preload("Items").Find(&sellerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerMs))
	for _, sellerM := range sellerMs {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, nil
}

// Create persists a new seller entity to the database.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. The unique constraint on
		// username backs the registration conflict check against concurrent inserts.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameConflict.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSellerCreationFailed.WrapMessage("missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	// Update the entity with the generated ID and timestamps
	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	items := make([]*entity.Item, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toItemDomain(itemM))
	}

	return &entity.Seller{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Location:     data.Location,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Location:     data.Location,
	}
}
