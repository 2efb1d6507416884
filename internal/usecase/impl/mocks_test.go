package impl

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// stubTxManager runs the callback against a fixed repository factory without
// any real transaction. Good enough for exercising the business logic paths.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepoFactory struct {
	sellerRepo repository.SellerRepository
	itemRepo   repository.ItemRepository
}

func (f *stubRepoFactory) SellerRepo() repository.SellerRepository { return f.sellerRepo }
func (f *stubRepoFactory) ItemRepo() repository.ItemRepository     { return f.itemRepo }

type mockSellerRepository struct {
	mock.Mock
}

func (m *mockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSellerRepository) FindByUsername(ctx context.Context, username string) (*entity.Seller, error) {
	args := m.Called(ctx, username)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSellerRepository) FindAll(ctx context.Context) ([]*entity.Seller, error) {
	args := m.Called(ctx)
	if sellers, ok := args.Get(0).([]*entity.Seller); ok {
		return sellers, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	args := m.Called(ctx, seller)

	return args.Error(0)
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.Item); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockItemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.Item); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockItemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*entity.Item); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockItemRepository) Update(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(sellerID uuid.UUID, username string) (string, error) {
	args := m.Called(sellerID, username)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
