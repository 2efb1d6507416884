package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller directory handlers.
type SellerHandler struct {
	uc usecase.SellerUsecase
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// List handles listing every seller with their items.
func (h *SellerHandler) List(c echo.Context) error {
	sellers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resps := make([]*sellerResponse, 0, len(sellers))
	for _, seller := range sellers {
		resps = append(resps, toSellerResponse(seller, true))
	}

	return response.Success(c, http.StatusOK, resps, "")
}
