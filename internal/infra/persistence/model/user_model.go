package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. Addresses and wishlist are embedded documents.
type UserModel struct {
	ID         uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	Name       string                            `gorm:"type:varchar(100)"`
	Email      string                            `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone      string                            `gorm:"type:varchar(32)"`
	Role       string                            `gorm:"type:varchar(64);not null;default:'customer'"`
	IsBlocked  bool                              `gorm:"not null;default:false"`
	IsVerified bool                              `gorm:"not null;default:false"`
	Addresses  datatypes.JSONType[[]AddressJSON] `gorm:"type:jsonb;not null"`
	Wishlist   datatypes.JSONType[[]uuid.UUID]   `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AddressJSON is the stored form of a saved address.
type AddressJSON struct {
	Label      string `json:"label,omitempty"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}
