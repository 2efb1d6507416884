package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// sellerResponse is the public view of a seller. The password hash never
// appears in any response shape.
type sellerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Location  string          `json:"location"`
	Items     []*itemResponse `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SellerID    uuid.UUID `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func toSellerResponse(seller *entity.Seller, withItems bool) *sellerResponse {
	resp := &sellerResponse{
		ID:        seller.ID,
		Username:  seller.Username,
		Location:  seller.Location,
		CreatedAt: seller.CreatedAt,
	}

	if withItems {
		resp.Items = toItemResponses(seller.Items)
	}

	return resp
}

func toItemResponse(item *entity.Item) *itemResponse {
	return &itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		SellerID:    item.SellerID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toItemResponses(items []*entity.Item) []*itemResponse {
	resps := make([]*itemResponse, 0, len(items))
	for _, item := range items {
		resps = append(resps, toItemResponse(item))
	}

	return resps
}
