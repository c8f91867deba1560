package models

import "time"

// Produtor represents a cattle producer (rancher/supplier).
type Produtor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Nome          string `gorm:"not null;size:255" json:"nome"`
	Endereco      string `gorm:"size:255" json:"endereco"`
	Cidade        string `gorm:"size:255" json:"cidade"`
	CNPJ          string `gorm:"column:cnpj;size:20" json:"cnpj"`
	MarcaProdutor string `gorm:"size:255" json:"marca_produtor"`
	Email         string `gorm:"size:255" json:"email"`

	Propriedades []Propriedade `gorm:"foreignKey:IDProdutor;constraint:OnDelete:CASCADE" json:"propriedades,omitempty"`
}

// TableName specifies the table name for Produtor.
func (Produtor) TableName() string {
	return "produtores"
}
