package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/auth"
	"bazaar/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- In-memory fakes -------------------------------------------------------

type memoryStore struct {
	mu      sync.Mutex
	sellers map[uuid.UUID]*entity.Seller
	items   map[uuid.UUID]*entity.Item
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sellers: make(map[uuid.UUID]*entity.Seller),
		items:   make(map[uuid.UUID]*entity.Item),
	}
}

type memorySellerRepo struct{ store *memoryStore }

func (r *memorySellerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seller, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seller, ok := r.store.sellers[id]
	if !ok {
		return nil, repository.ErrSellerNotFound
	}
	cloned := *seller

	return &cloned, nil
}

func (r *memorySellerRepo) FindByUsername(_ context.Context, username string) (*entity.Seller, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, seller := range r.store.sellers {
		if seller.Username == username {
			cloned := *seller

			return &cloned, nil
		}
	}

	return nil, repository.ErrSellerNotFound
}

func (r *memorySellerRepo) FindAll(_ context.Context) ([]*entity.Seller, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sellers := make([]*entity.Seller, 0, len(r.store.sellers))
	for _, seller := range r.store.sellers {
		cloned := *seller
		cloned.Items = nil
		for _, item := range r.store.items {
			if item.SellerID == seller.ID {
				itemCloned := *item
				cloned.Items = append(cloned.Items, &itemCloned)
			}
		}
		sellers = append(sellers, &cloned)
	}

	return sellers, nil
}

func (r *memorySellerRepo) Create(_ context.Context, seller *entity.Seller) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seller.ID = uuid.New()
	seller.CreatedAt = time.Now()
	seller.UpdatedAt = seller.CreatedAt
	cloned := *seller
	r.store.sellers[seller.ID] = &cloned

	return nil
}

type memoryItemRepo struct{ store *memoryStore }

func (r *memoryItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	cloned := *item

	return &cloned, nil
}

func (r *memoryItemRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryItemRepo) FindAll(_ context.Context) ([]*entity.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := make([]*entity.Item, 0, len(r.store.items))
	for _, item := range r.store.items {
		cloned := *item
		items = append(items, &cloned)
	}

	return items, nil
}

func (r *memoryItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	cloned := *item
	r.store.items[item.ID] = &cloned

	return nil
}

func (r *memoryItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.items[item.ID]
	if !ok {
		return repository.ErrItemNotFound
	}
	stored.Name = item.Name
	stored.Description = item.Description
	stored.UpdatedAt = time.Now()
	item.UpdatedAt = stored.UpdatedAt

	return nil
}

func (r *memoryItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(r.store.items, id)

	return nil
}

type memoryTxManager struct {
	sellerRepo repository.SellerRepository
	itemRepo   repository.ItemRepository
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memoryTxManager) SellerRepo() repository.SellerRepository { return m.sellerRepo }
func (m *memoryTxManager) ItemRepo() repository.ItemRepository     { return m.itemRepo }

// --- Test server -----------------------------------------------------------

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := newMemoryStore()
	sellerRepo := &memorySellerRepo{store: store}
	itemRepo := &memoryItemRepo{store: store}
	txManager := &memoryTxManager{sellerRepo: sellerRepo, itemRepo: itemRepo}

	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    txManager,
		SellerRepo:   sellerRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	itemUC := impl.NewItemService(impl.ItemServiceParams{
		TxManager: txManager,
		ItemRepo:  itemRepo,
		Logger:    logger,
	})
	sellerUC := impl.NewSellerService(impl.SellerServiceParams{
		SellerRepo: sellerRepo,
		Logger:     logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(authUC),
		ItemHandler:         handler.NewItemHandler(itemUC),
		SellerHandler:       handler.NewSellerHandler(sellerUC),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func registerAndLogin(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"`+username+`","password":"correct-horse-battery","location":"Lisbon"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"`+username+`","password":"correct-horse-battery"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	token, ok := dataField(t, rec)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

// --- Tests -----------------------------------------------------------------

func TestRouter_HealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RegisterConflict(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","password":"correct-horse-battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Registration response must not leak the password hash.
	data := dataField(t, rec)
	assert.Equal(t, "alice", data["username"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","password":"another-password-here"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_CONFLICT")
}

func TestRouter_LoginFailuresAreIndistinguishable(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e, "alice")

	unknownUser := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"ghost","password":"whatever-password"}`)
	wrongPassword := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"alice","password":"wrong-password-here"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

func TestRouter_ItemLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "alice")

	// Unauthenticated create is rejected.
	rec := doJSON(e, http.MethodPost, "/items", "", `{"name":"Mug"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated create succeeds.
	rec = doJSON(e, http.MethodPost, "/items", token, `{"name":"Mug","description":"Stoneware"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID, ok := dataField(t, rec)["id"].(string)
	require.True(t, ok)

	// Reads are public.
	rec = doJSON(e, http.MethodGet, "/items", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), itemID)

	rec = doJSON(e, http.MethodGet, "/items/"+itemID, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Partial update keeps the omitted name.
	rec = doJSON(e, http.MethodPatch, "/items/"+itemID, token, `{"description":"Porcelain"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	assert.Equal(t, "Mug", data["name"])
	assert.Equal(t, "Porcelain", data["description"])

	// An explicit empty description clears the field; the name survives.
	rec = doJSON(e, http.MethodPatch, "/items/"+itemID, token, `{"description":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data = dataField(t, rec)
	assert.Equal(t, "Mug", data["name"])
	assert.Equal(t, "", data["description"])

	// Delete, then the item is gone.
	rec = doJSON(e, http.MethodDelete, "/items/"+itemID, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/items/"+itemID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ITEM_NOT_FOUND")
}

func TestRouter_CrossSellerWritesRejected(t *testing.T) {
	e := newTestServer(t)
	aliceToken := registerAndLogin(t, e, "alice")
	malloryToken := registerAndLogin(t, e, "mallory")

	rec := doJSON(e, http.MethodPost, "/items", aliceToken, `{"name":"Mug"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID, ok := dataField(t, rec)["id"].(string)
	require.True(t, ok)

	rec = doJSON(e, http.MethodPatch, "/items/"+itemID, malloryToken, `{"name":"Stolen"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	rec = doJSON(e, http.MethodDelete, "/items/"+itemID, malloryToken, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The item is untouched.
	rec = doJSON(e, http.MethodGet, "/items/"+itemID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mug", dataField(t, rec)["name"])
}

func TestRouter_UnknownItemIsNotFoundForEveryone(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "alice")

	missingID := uuid.New().String()

	rec := doJSON(e, http.MethodPatch, "/items/"+missingID, token, `{"name":"Mug"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/items/"+missingID, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// An unparseable ID reads the same as an unknown one.
	rec = doJSON(e, http.MethodGet, "/items/not-a-uuid", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SellerDirectoryStripsSecrets(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "alice")

	rec := doJSON(e, http.MethodPost, "/items", token, `{"name":"Mug"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/sellers", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), "Mug")
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestRouter_ValidationFailures(t *testing.T) {
	e := newTestServer(t)

	// Password below minimum length.
	rec := doJSON(e, http.MethodPost, "/auth/register", "", `{"username":"bob","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Item without a name.
	token := registerAndLogin(t, e, "alice")
	rec = doJSON(e, http.MethodPost, "/items", token, `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A patch may omit the name but must not blank it.
	rec = doJSON(e, http.MethodPost, "/items", token, `{"name":"Mug"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID, ok := dataField(t, rec)["id"].(string)
	require.True(t, ok)

	rec = doJSON(e, http.MethodPatch, "/items/"+itemID, token, `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/items/"+itemID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mug", dataField(t, rec)["name"])
}
