package models

import "time"

// Protocolo is the certification protocol lookup table referenced by
// schedule entries.
type Protocolo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nome string `gorm:"not null;size:255" json:"nome"`
}

// TableName specifies the table name for Protocolo.
func (Protocolo) TableName() string {
	return "protocolos"
}
