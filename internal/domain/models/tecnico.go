package models

import (
	"time"

	"github.com/google/uuid"
)

// Tecnico represents a field technician who negotiates or accompanies a
// scheduled slaughter service.
type Tecnico struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Empresa   string     `gorm:"size:255" json:"empresa"`
	IDUsuario *uuid.UUID `gorm:"column:id_usuario;type:uuid" json:"id_usuario,omitempty"`

	Usuario *Profile `gorm:"foreignKey:IDUsuario" json:"usuario,omitempty"`
}

// TableName specifies the table name for Tecnico.
func (Tecnico) TableName() string {
	return "tecnicos"
}
