package models

import "time"

// Classificacao is the A/B/C tier assigned to a property.
const (
	ClassificacaoA = "A"
	ClassificacaoB = "B"
	ClassificacaoC = "C"
)

// ClassificacaoValida reports whether the given tier belongs to the
// enumerated set {A, B, C}.
func ClassificacaoValida(tier string) bool {
	return tier == ClassificacaoA || tier == ClassificacaoB || tier == ClassificacaoC
}

// Propriedade represents a farm owned by exactly one producer.
type Propriedade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IDProdutor        uint   `gorm:"column:id_produtor;not null;index" json:"id_produtor"`
	Nome              string `gorm:"not null;size:255" json:"nome"`
	Telefone          string `gorm:"size:30" json:"telefone"`
	Celular           string `gorm:"size:30" json:"celular"`
	Endereco          string `gorm:"size:255" json:"endereco"`
	Localizacao       string `gorm:"size:255" json:"localizacao"`
	Cidade            string `gorm:"size:255" json:"cidade"`
	InscricaoEstadual string `gorm:"size:50" json:"inscricao_estadual"`
	Classificacao     string `gorm:"size:1" json:"classificacao"`

	Produtor *Produtor `gorm:"foreignKey:IDProdutor" json:"produtor,omitempty"`
}

// TableName specifies the table name for Propriedade.
func (Propriedade) TableName() string {
	return "propriedades"
}
