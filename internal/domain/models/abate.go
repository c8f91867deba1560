package models

import "time"

// Abate is a slaughter event record. Dates travel as YYYY-MM-DD strings end
// to end (form input, spreadsheet import, reports), so data_abate is kept as
// a date column bound to a string field.
type Abate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// IDPropriedade is nullable: spreadsheet imports carry no farm column,
	// so the foreign key must accept rows without one.
	IDProdutor        uint  `gorm:"column:id_produtor;not null;index" json:"id_produtor"`
	IDPropriedade     *uint `gorm:"column:id_propriedade;index" json:"id_propriedade"`
	IDFrigorifico     uint  `gorm:"column:id_frigorifico;not null;index" json:"id_frigorifico"`
	IDCategoriaAnimal uint  `gorm:"column:id_categoria_animal;not null;index" json:"id_categoria_animal"`

	NomeLote  string `gorm:"size:255" json:"nome_lote"`
	DataAbate string `gorm:"column:data_abate;type:date;not null;index" json:"data_abate"`

	Quantidade              int     `gorm:"not null" json:"quantidade"`
	ValorArrobaNegociada    float64 `gorm:"type:decimal(10,2)" json:"valor_arroba_negociada"`
	ValorArrobaPrazoOuVista float64 `gorm:"type:decimal(10,2)" json:"valor_arroba_prazo_ou_vista"`
	ValorTotalAcerto        float64 `gorm:"type:decimal(12,2)" json:"valor_total_acerto"`
	Desconto                float64 `gorm:"type:decimal(10,2)" json:"desconto"`
	Reembolso               float64 `gorm:"type:decimal(10,2)" json:"reembolso"`
	DiasCocho               int     `json:"dias_cocho"`
	CarcacasAvaliadas       int     `json:"carcacas_avaliadas"`

	Trace          bool `json:"trace"`
	Hilton         bool `json:"hilton"`
	NovilhoPrecoce bool `gorm:"column:novilho_precoce" json:"novilho_precoce"`

	Observacao string `gorm:"type:text" json:"observacao"`

	Produtor        *Produtor        `gorm:"foreignKey:IDProdutor" json:"produtor,omitempty"`
	Propriedade     *Propriedade     `gorm:"foreignKey:IDPropriedade" json:"propriedade,omitempty"`
	Frigorifico     *Frigorifico     `gorm:"foreignKey:IDFrigorifico" json:"frigorifico,omitempty"`
	CategoriaAnimal *CategoriaAnimal `gorm:"foreignKey:IDCategoriaAnimal" json:"categoria_animal,omitempty"`
}

// TableName specifies the table name for Abate.
func (Abate) TableName() string {
	return "abates"
}
