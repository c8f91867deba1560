package models

import "time"

// CategoriaAnimal is the animal category lookup table.
type CategoriaAnimal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nome string `gorm:"not null;size:100" json:"nome"`
}

// TableName specifies the table name for CategoriaAnimal.
func (CategoriaAnimal) TableName() string {
	return "categoria_animais"
}
