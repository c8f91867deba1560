// Package importacao implements the spreadsheet import pipeline for
// slaughter events: parse, column auto-mapping, type coercion, row
// validation and one atomic batch persist.
package importacao

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// ImportAbate is one coerced spreadsheet row, typed per target field.
type ImportAbate struct {
	DataAbate            string  `json:"data_abate"`
	NomeLote             string  `json:"nome_lote"`
	Quantidade           float64 `json:"quantidade"`
	ValorArrobaNegociada float64 `json:"valor_arroba_negociada"`
	ValorTotalAcerto     float64 `json:"valor_total_acerto"`
	IDProdutor           float64 `json:"id_produtor"`
	IDFrigorifico        float64 `json:"id_frigorifico"`
	IDCategoria          float64 `json:"id_categoria_animal"`
	Trace                bool    `json:"trace"`
	Hilton               bool    `json:"hilton"`
	NovilhoPrecoce       bool    `json:"novilho_precoce"`
}

// toModel converts a validated row into the persisted entity.
func (r ImportAbate) toModel() models.Abate {
	return models.Abate{
		DataAbate:            r.DataAbate,
		NomeLote:             r.NomeLote,
		Quantidade:           int(r.Quantidade),
		ValorArrobaNegociada: r.ValorArrobaNegociada,
		ValorTotalAcerto:     r.ValorTotalAcerto,
		IDProdutor:           uint(r.IDProdutor),
		IDFrigorifico:        uint(r.IDFrigorifico),
		IDCategoriaAnimal:    uint(r.IDCategoria),
		Trace:                r.Trace,
		Hilton:               r.Hilton,
		NovilhoPrecoce:       r.NovilhoPrecoce,
	}
}

// Preview is what the mapping screen needs after parsing a file.
type Preview struct {
	Headers   []string        `json:"headers"`
	Mapping   []ColumnMapping `json:"mapping"`
	TotalRows int             `json:"total_rows"`
	Sample    [][]string      `json:"sample"`
}

// Result summarizes a batch persist. The batch is atomic, so one of the two
// counters is always zero.
type Result struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
}

// Service drives the import pipeline end to end.
type Service struct {
	abates postgres.AbateRepository
	logger *zap.Logger
}

// NewService wires a new import service instance.
func NewService(abates postgres.AbateRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{abates: abates, logger: logger}
}

// Preview parses the uploaded file and proposes a column mapping.
func (s *Service) Preview(filename string, data []byte) (*Preview, error) {
	rows, err := ParseFile(filename, data)
	if err != nil {
		return nil, err
	}

	headers := rows[0]
	sample := rows[1:]
	if len(sample) > 5 {
		sample = sample[:5]
	}

	return &Preview{
		Headers:   headers,
		Mapping:   AutoMap(headers).Pairs(),
		TotalRows: len(rows) - 1,
		Sample:    sample,
	}, nil
}

// Process coerces the data rows according to the mapping. Coercion failures
// are reported alongside the row validation errors; unconvertible numerics
// fall back to zero so the positivity checks still flag the row.
func (s *Service) Process(rows [][]string, mapping *Mapping) ([]ImportAbate, []ValidationError) {
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	var out []ImportAbate
	var errs []ValidationError

	for i, raw := range rows[1:] {
		rowNum := i + 2
		var item ImportAbate

		for col, header := range headers {
			field, ok := mapping.FieldFor(header)
			if !ok || col >= len(raw) {
				continue
			}
			cell := DetectCell(raw[col])
			if err := applyField(&item, field, cell); err != nil {
				errs = append(errs, ValidationError{Row: rowNum, Field: string(field), Message: err.Error()})
			}
		}

		out = append(out, item)
	}

	errs = append(errs, ValidateRows(out)...)
	return out, errs
}

// applyField routes one cell through the coercion table for its target field.
func applyField(item *ImportAbate, field Field, cell Cell) error {
	var err error
	switch field {
	case FieldDataAbate:
		item.DataAbate, err = coerceDate(cell)
	case FieldNomeLote:
		item.NomeLote, err = coerceString(cell)
	case FieldQuantidade:
		item.Quantidade, err = coerceNumber(cell)
	case FieldValorArroba:
		item.ValorArrobaNegociada, err = coerceNumber(cell)
	case FieldValorTotal:
		item.ValorTotalAcerto, err = coerceNumber(cell)
	case FieldIDProdutor:
		item.IDProdutor, err = coerceNumber(cell)
	case FieldIDFrigorifico:
		item.IDFrigorifico, err = coerceNumber(cell)
	case FieldIDCategoria:
		item.IDCategoria, err = coerceNumber(cell)
	case FieldTrace:
		item.Trace, err = coerceBool(cell)
	case FieldHilton:
		item.Hilton, err = coerceBool(cell)
	case FieldNovilhoPrecoce:
		item.NovilhoPrecoce, err = coerceBool(cell)
	}
	return err
}

// Run executes the whole pipeline for an uploaded file and an agreed
// mapping. When validation errors exist the persist step is blocked and the
// errors are returned; otherwise the batch lands in one transaction.
func (s *Service) Run(ctx context.Context, filename string, data []byte, mapping *Mapping) (*Result, []ValidationError, error) {
	rows, err := ParseFile(filename, data)
	if err != nil {
		return nil, nil, err
	}
	if mapping.Len() == 0 {
		return nil, nil, fmt.Errorf("mapeie pelo menos uma coluna para continuar")
	}

	items, validationErrs := s.Process(rows, mapping)
	if len(validationErrs) > 0 {
		s.logger.Warn("importação bloqueada por erros de validação",
			zap.Int("rows", len(items)),
			zap.Int("errors", len(validationErrs)))
		return nil, validationErrs, nil
	}

	batch := make([]models.Abate, 0, len(items))
	for _, item := range items {
		batch = append(batch, item.toModel())
	}

	if err := s.abates.BulkInsert(ctx, batch); err != nil {
		s.logger.Error("falha na importação em lote", zap.Error(err), zap.Int("rows", len(batch)))
		return &Result{Success: 0, Errors: len(batch)}, nil, err
	}

	s.logger.Info("importação concluída", zap.Int("rows", len(batch)))
	return &Result{Success: len(batch), Errors: 0}, nil, nil
}
