package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a listing owned by exactly one seller. SellerID is set once at
// creation and never changes; ownership is the sole authorization boundary
// for mutations.
type Item struct {
	ID          uuid.UUID // Unique identifier, assigned by the database.
	Name        string    // Listing name.
	Description string    // Listing description.
	SellerID    uuid.UUID // Owning seller, immutable after creation.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
