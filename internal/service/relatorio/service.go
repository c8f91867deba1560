// Package relatorio aggregates slaughter events into the management reports
// and renders their spreadsheet and PDF exports.
package relatorio

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// arrobasPorCabeca is the agreed average carcass weight used to derive the
// negotiated price per arroba from a settlement total.
const arrobasPorCabeca = 15

// ResumoProdutor is the per-producer report line.
type ResumoProdutor struct {
	IDProdutor     uint    `json:"id_produtor"`
	Nome           string  `json:"nome"`
	Propriedade    string  `json:"propriedade"`
	TotalAbates    int     `json:"total_abates"`
	TotalAnimais   int     `json:"total_animais"`
	ValorTotal     float64 `json:"valor_total"`
	MediaArroba    float64 `json:"media_arroba"`
	Trace          int     `json:"trace"`
	Hilton         int     `json:"hilton"`
	NovilhoPrecoce int     `json:"novilho_precoce"`
}

// ResumoFrigorifico is the per-slaughterhouse report line.
type ResumoFrigorifico struct {
	IDFrigorifico uint    `json:"id_frigorifico"`
	Nome          string  `json:"nome"`
	TotalAbates   int     `json:"total_abates"`
	TotalAnimais  int     `json:"total_animais"`
	ValorTotal    float64 `json:"valor_total"`
}

// Service builds the three report views over the filtered slaughter events.
type Service struct {
	abates postgres.AbateRepository
	logger *zap.Logger
}

// NewService wires a new report service instance.
func NewService(abates postgres.AbateRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{abates: abates, logger: logger}
}

// Abates returns the filtered event list, the flat report.
func (s *Service) Abates(ctx context.Context, filter postgres.AbateFilter) ([]models.Abate, error) {
	abates, err := s.abates.ListFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("relatório de abates: %w", err)
	}
	return abates, nil
}

// PorProdutor groups the filtered events by producer. Every event lands in
// exactly one group, so the group totals always add back up to the flat
// report's totals.
func (s *Service) PorProdutor(ctx context.Context, filter postgres.AbateFilter) ([]ResumoProdutor, error) {
	abates, err := s.abates.ListFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("relatório por produtor: %w", err)
	}

	groups := make(map[uint]*ResumoProdutor)
	for _, a := range abates {
		g, ok := groups[a.IDProdutor]
		if !ok {
			g = &ResumoProdutor{IDProdutor: a.IDProdutor}
			if a.Produtor != nil {
				g.Nome = a.Produtor.Nome
			}
			if a.Propriedade != nil {
				g.Propriedade = a.Propriedade.Nome
			}
			groups[a.IDProdutor] = g
		}
		g.TotalAbates++
		g.TotalAnimais += a.Quantidade
		g.ValorTotal += a.ValorTotalAcerto
		if a.Trace {
			g.Trace++
		}
		if a.Hilton {
			g.Hilton++
		}
		if a.NovilhoPrecoce {
			g.NovilhoPrecoce++
		}
	}

	resumos := make([]ResumoProdutor, 0, len(groups))
	for _, g := range groups {
		if g.TotalAnimais > 0 {
			g.MediaArroba = g.ValorTotal / float64(g.TotalAnimais*arrobasPorCabeca)
		}
		resumos = append(resumos, *g)
	}
	sort.Slice(resumos, func(i, j int) bool { return resumos[i].Nome < resumos[j].Nome })
	return resumos, nil
}

// PorFrigorifico groups the filtered events by slaughterhouse.
func (s *Service) PorFrigorifico(ctx context.Context, filter postgres.AbateFilter) ([]ResumoFrigorifico, error) {
	abates, err := s.abates.ListFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("relatório por frigorífico: %w", err)
	}

	groups := make(map[uint]*ResumoFrigorifico)
	for _, a := range abates {
		g, ok := groups[a.IDFrigorifico]
		if !ok {
			g = &ResumoFrigorifico{IDFrigorifico: a.IDFrigorifico}
			if a.Frigorifico != nil {
				g.Nome = a.Frigorifico.Nome
			}
			groups[a.IDFrigorifico] = g
		}
		g.TotalAbates++
		g.TotalAnimais += a.Quantidade
		g.ValorTotal += a.ValorTotalAcerto
	}

	resumos := make([]ResumoFrigorifico, 0, len(groups))
	for _, g := range groups {
		resumos = append(resumos, *g)
	}
	sort.Slice(resumos, func(i, j int) bool { return resumos[i].Nome < resumos[j].Nome })
	return resumos, nil
}
