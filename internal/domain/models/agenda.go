package models

// AgendaAbate is the read-only weekly calendar projection over schedule
// entries. It replaces the old view_agenda_abates database view: the join is
// resolved in Go and semana/ano/dia_semana are computed from data_abate, so
// every call site shares one week algorithm.
type AgendaAbate struct {
	ID           uint   `json:"id"`
	TipoServico  string `json:"tipo_servico"`
	DataEmbarque string `json:"data_embarque"`
	DataAbate    string `json:"data_abate"`
	Quantidade   int    `json:"quantidade"`
	Categoria    string `json:"categoria"`
	Municipio    string `json:"municipio"`

	PrecoArroba    *float64 `json:"preco_arroba"`
	PrecoCabeca    *float64 `json:"preco_cabeca"`
	TipoNegociacao string   `json:"tipo_negociacao"`
	FormaPagamento string   `json:"forma_pagamento"`
	Observacoes    *string  `json:"observacoes"`

	IDFrigorifico   uint   `json:"id_frigorifico"`
	FrigorificoNome string `json:"frigorifico_nome"`
	IDProdutor      uint   `json:"id_produtor"`
	ProdutorNome    string `json:"produtor_nome"`
	IDPropriedade   uint   `json:"id_propriedade"`
	PropriedadeNome string `json:"propriedade_nome"`

	IDTecnicoNegociador       *uint   `json:"id_tecnico_negociador"`
	TecnicoNegociadorEmpresa  *string `json:"tecnico_negociador_empresa"`
	TecnicoNegociadorNome     *string `json:"tecnico_negociador_nome"`
	IDTecnicoResponsavel      *uint   `json:"id_tecnico_responsavel"`
	TecnicoResponsavelEmpresa *string `json:"tecnico_responsavel_empresa"`
	TecnicoResponsavelNome    *string `json:"tecnico_responsavel_nome"`

	Semana    int    `json:"semana"`
	Ano       int    `json:"ano"`
	DiaSemana string `json:"dia_semana"`
}
