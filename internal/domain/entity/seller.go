// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is an account that owns zero or more item listings.
// The PasswordHash must never leave the service boundary; the delivery
// layer maps sellers to response models that omit it.
type Seller struct {
	ID           uuid.UUID // Unique identifier, assigned by the database.
	Username     string    // Login identifier, unique across all sellers.
	PasswordHash string    // bcrypt hash of the seller's password.
	Location     string    // Free-form location, e.g. "london".
	Items        []*Item   // Listings owned by this seller. Populated on demand.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
