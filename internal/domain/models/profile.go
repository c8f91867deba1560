package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role drives menu visibility and route guarding.
const (
	RoleAdmin   = "admin"
	RoleTecnico = "tecnico"
)

// rolePermissions maps a role to the page-level permissions it grants.
// Admin holds the wildcard "all".
var rolePermissions = map[string][]string{
	RoleAdmin:   {"all"},
	RoleTecnico: {"escala", "agenda"},
}

// HasPermission reports whether the given role grants the required
// page-level permission.
func HasPermission(role, required string) bool {
	if role == "" {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	for _, p := range rolePermissions[role] {
		if p == required || p == "all" {
			return true
		}
	}
	return false
}

// Profile is the application-side record for an authenticated user. The ID
// mirrors the Supabase auth user UUID.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email  string `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name   string `gorm:"size:255" json:"name"`
	Type   string `gorm:"size:20;not null;default:'tecnico'" json:"type"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

// TableName specifies the table name for Profile.
func (Profile) TableName() string {
	return "profiles"
}
