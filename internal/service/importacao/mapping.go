package importacao

import "strings"

// Field identifies a target column of the abates table.
type Field string

const (
	FieldDataAbate      Field = "data_abate"
	FieldNomeLote       Field = "nome_lote"
	FieldQuantidade     Field = "quantidade"
	FieldValorArroba    Field = "valor_arroba_negociada"
	FieldValorTotal     Field = "valor_total_acerto"
	FieldIDProdutor     Field = "id_produtor"
	FieldIDFrigorifico  Field = "id_frigorifico"
	FieldIDCategoria    Field = "id_categoria_animal"
	FieldTrace          Field = "trace"
	FieldHilton         Field = "hilton"
	FieldNovilhoPrecoce Field = "novilho_precoce"
)

// synonym pairs a normalized header fragment with its target field. Order
// matters: the first match wins, which keeps auto-mapping deterministic.
type synonym struct {
	fragment string
	field    Field
}

var synonyms = []synonym{
	{"data_abate", FieldDataAbate},
	{"data abate", FieldDataAbate},
	{"data", FieldDataAbate},
	{"nome_lote", FieldNomeLote},
	{"nome do lote", FieldNomeLote},
	{"lote", FieldNomeLote},
	{"quantidade", FieldQuantidade},
	{"qtd", FieldQuantidade},
	{"valor_arroba_negociada", FieldValorArroba},
	{"valor_arroba", FieldValorArroba},
	{"valor arroba", FieldValorArroba},
	{"arroba", FieldValorArroba},
	{"valor_total_acerto", FieldValorTotal},
	{"valor_total", FieldValorTotal},
	{"valor total", FieldValorTotal},
	{"total", FieldValorTotal},
	{"id_produtor", FieldIDProdutor},
	{"produtor", FieldIDProdutor},
	{"id_frigorifico", FieldIDFrigorifico},
	{"frigorifico", FieldIDFrigorifico},
	{"id_categoria_animal", FieldIDCategoria},
	{"id_categoria", FieldIDCategoria},
	{"categoria", FieldIDCategoria},
	{"trace", FieldTrace},
	{"hilton", FieldHilton},
	{"novilho_precoce", FieldNovilhoPrecoce},
	{"novilho", FieldNovilhoPrecoce},
}

// ColumnMapping links one spreadsheet column to one target field.
type ColumnMapping struct {
	SheetColumn string `json:"sheet_column"`
	DBField     Field  `json:"db_field"`
}

// Mapping is the 1:1 association between spreadsheet columns and target
// fields. A field may be claimed by at most one column at a time.
type Mapping struct {
	pairs []ColumnMapping
}

// NewMapping builds a mapping from explicit pairs, applying the claim rules
// pair by pair so duplicated targets resolve to the last claim.
func NewMapping(pairs []ColumnMapping) *Mapping {
	m := &Mapping{}
	for _, p := range pairs {
		m.Claim(p.SheetColumn, p.DBField)
	}
	return m
}

// AutoMap proposes a mapping by normalizing each header (lowercase, trim)
// and matching it against the synonym table. Unmatched headers stay
// unmapped. Re-running on the same headers always yields the same result.
func AutoMap(headers []string) *Mapping {
	m := &Mapping{}
	for _, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		for _, syn := range synonyms {
			if strings.Contains(normalized, syn.fragment) {
				if _, taken := m.ColumnFor(syn.field); !taken {
					m.Claim(header, syn.field)
				}
				break
			}
		}
	}
	return m
}

// Claim maps column to field. Claiming a field that another column holds
// unclaims that column first, so no field is ever mapped twice.
func (m *Mapping) Claim(column string, field Field) {
	kept := m.pairs[:0]
	for _, p := range m.pairs {
		if p.DBField == field || p.SheetColumn == column {
			continue
		}
		kept = append(kept, p)
	}
	m.pairs = append(kept, ColumnMapping{SheetColumn: column, DBField: field})
}

// Unclaim removes any mapping held by the given column.
func (m *Mapping) Unclaim(column string) {
	kept := m.pairs[:0]
	for _, p := range m.pairs {
		if p.SheetColumn == column {
			continue
		}
		kept = append(kept, p)
	}
	m.pairs = kept
}

// FieldFor returns the target field claimed by the given column.
func (m *Mapping) FieldFor(column string) (Field, bool) {
	for _, p := range m.pairs {
		if p.SheetColumn == column {
			return p.DBField, true
		}
	}
	return "", false
}

// ColumnFor returns the column currently claiming the given field.
func (m *Mapping) ColumnFor(field Field) (string, bool) {
	for _, p := range m.pairs {
		if p.DBField == field {
			return p.SheetColumn, true
		}
	}
	return "", false
}

// Pairs returns the current column/field associations.
func (m *Mapping) Pairs() []ColumnMapping {
	out := make([]ColumnMapping, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len reports how many columns are mapped.
func (m *Mapping) Len() int {
	return len(m.pairs)
}
