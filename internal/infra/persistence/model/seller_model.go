// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type SellerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Location     string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []*ItemModel `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
