package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PermissionsJSON is the stored permission matrix: resource -> action -> allowed.
type PermissionsJSON map[string]map[string]bool

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	Name        string                              `gorm:"type:varchar(64);uniqueIndex;not null"`
	Description string                              `gorm:"type:text"`
	IsSystem    bool                                `gorm:"not null;default:false"`
	Permissions datatypes.JSONType[PermissionsJSON] `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
