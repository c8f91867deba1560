package models

import "time"

// Service types and negotiation lookup values offered by the schedule forms.
// These are static lists, not database tables.
var (
	TiposServico    = []string{"ABATE", "CERTIFICAÇÃO", "DESOSSA", "VISITA TÉCNICA"}
	TiposNegociacao = []string{"DIRETO PRODUTOR", "PECBR"}
	FormasPagamento = []string{"À vista", "07 dias", "15 dias", "30 dias"}
)

// EscalaAbate is a planned slaughter service: embarkation and slaughter
// dates, the parties involved and the negotiation terms.
type EscalaAbate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TipoServico  string `gorm:"size:50;not null" json:"tipo_servico"`
	DataEmbarque string `gorm:"column:data_embarque;type:date" json:"data_embarque"`
	DataAbate    string `gorm:"column:data_abate;type:date;not null;index" json:"data_abate"`

	IDFrigorifico uint   `gorm:"column:id_frigorifico;not null;index" json:"id_frigorifico"`
	IDProdutor    uint   `gorm:"column:id_produtor;not null;index" json:"id_produtor"`
	IDPropriedade uint   `gorm:"column:id_propriedade;not null;index" json:"id_propriedade"`
	Quantidade    int    `gorm:"not null" json:"quantidade"`
	Categoria     string `gorm:"size:10" json:"categoria"`
	Municipio     string `gorm:"size:255" json:"municipio"`

	IDProtocolo          *uint    `gorm:"column:id_protocolo" json:"id_protocolo"`
	PrecoArroba          *float64 `gorm:"type:decimal(10,2)" json:"preco_arroba"`
	PrecoCabeca          *float64 `gorm:"type:decimal(10,2)" json:"preco_cabeca"`
	TipoNegociacao       string   `gorm:"size:50" json:"tipo_negociacao"`
	FormaPagamento       string   `gorm:"size:50" json:"forma_pagamento"`
	IDTecnicoNegociador  *uint    `gorm:"column:id_tecnico_negociador" json:"id_tecnico_negociador"`
	IDTecnicoResponsavel *uint    `gorm:"column:id_tecnico_responsavel" json:"id_tecnico_responsavel"`

	Observacoes *string `gorm:"type:text" json:"observacoes"`

	Frigorifico        *Frigorifico `gorm:"foreignKey:IDFrigorifico" json:"frigorifico,omitempty"`
	Produtor           *Produtor    `gorm:"foreignKey:IDProdutor" json:"produtor,omitempty"`
	Propriedade        *Propriedade `gorm:"foreignKey:IDPropriedade" json:"propriedade,omitempty"`
	Protocolo          *Protocolo   `gorm:"foreignKey:IDProtocolo" json:"protocolo,omitempty"`
	TecnicoNegociador  *Tecnico     `gorm:"foreignKey:IDTecnicoNegociador" json:"tecnico_negociador,omitempty"`
	TecnicoResponsavel *Tecnico     `gorm:"foreignKey:IDTecnicoResponsavel" json:"tecnico_responsavel,omitempty"`
}

// TableName specifies the table name for EscalaAbate.
func (EscalaAbate) TableName() string {
	return "escala_abates"
}
