package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for item-related handlers.
type ItemHandler struct {
	uc usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List handles listing every item. No authentication required.
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponses(items), "")
}

// GetByID handles fetching a single item. No authentication required.
func (h *ItemHandler) GetByID(c echo.Context) error {
	itemID, ok := itemIDParam(c)
	if !ok {
		return response.NotFound(c, "ITEM_NOT_FOUND", "item not found")
	}

	item, err := h.uc.GetByID(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "")
}

// Create handles listing a new item for the authenticated seller.
func (h *ItemHandler) Create(c echo.Context) error {
	sellerID, ok := sellerIDFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input usecase.CreateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.Create(c.Request().Context(), sellerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toItemResponse(item), "Item created successfully")
}

// Update handles a partial update of an item owned by the authenticated seller.
func (h *ItemHandler) Update(c echo.Context) error {
	sellerID, ok := sellerIDFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	itemID, ok := itemIDParam(c)
	if !ok {
		return response.NotFound(c, "ITEM_NOT_FOUND", "item not found")
	}

	var input usecase.UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.Update(c.Request().Context(), itemID, sellerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "Item updated successfully")
}

// Delete handles removing an item owned by the authenticated seller.
func (h *ItemHandler) Delete(c echo.Context) error {
	sellerID, ok := sellerIDFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	itemID, ok := itemIDParam(c)
	if !ok {
		return response.NotFound(c, "ITEM_NOT_FOUND", "item not found")
	}

	item, err := h.uc.Delete(c.Request().Context(), itemID, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "Item deleted successfully")
}

// sellerIDFromContext reads the caller identity placed by the auth middleware.
func sellerIDFromContext(c echo.Context) (uuid.UUID, bool) {
	sellerID, ok := c.Get(middleware.ContextKeySellerID).(uuid.UUID)

	return sellerID, ok
}

// itemIDParam parses the :id path parameter. An unparseable ID can never
// match a stored item, so it reads as not-found.
func itemIDParam(c echo.Context) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(c.Param("id"))

	return itemID, err == nil
}
