package models

import "time"

// Frigorifico represents a slaughterhouse.
type Frigorifico struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nome     string `gorm:"not null;size:255" json:"nome"`
	Endereco string `gorm:"size:255" json:"endereco"`
	Cidade   string `gorm:"size:255" json:"cidade"`
	CNPJ     string `gorm:"column:cnpj;size:20" json:"cnpj"`
	Email    string `gorm:"size:255" json:"email"`
}

// TableName specifies the table name for Frigorifico.
func (Frigorifico) TableName() string {
	return "frigorificos"
}
