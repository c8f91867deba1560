// Package dashboard computes the landing-page summary over the slaughter
// events.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/repository/postgres"
)

// PorCategoria is one slice of the category breakdown.
type PorCategoria struct {
	Categoria  string `json:"categoria"`
	Quantidade int    `json:"quantidade"`
}

// PorMes is one month bucket of the slaughter history, keyed YYYY-MM.
type PorMes struct {
	Mes        string  `json:"mes"`
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
}

// Bonificacoes counts the events under each certification program.
type Bonificacoes struct {
	Trace          int `json:"trace"`
	Hilton         int `json:"hilton"`
	NovilhoPrecoce int `json:"novilho_precoce"`
}

// Resumo is the dashboard payload.
type Resumo struct {
	TotalAbates          int            `json:"total_abates"`
	TotalAnimais         int            `json:"total_animais"`
	ValorTotalAcerto     float64        `json:"valor_total_acerto"`
	MediaArrobaNegociada float64        `json:"media_arroba_negociada"`
	AbatesPorCategoria   []PorCategoria `json:"abates_por_categoria"`
	AbatesPorMes         []PorMes       `json:"abates_por_mes"`
	Bonificacoes         Bonificacoes   `json:"bonificacoes"`
}

// Service aggregates slaughter events into the dashboard summary.
type Service struct {
	abates postgres.AbateRepository
	logger *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(abates postgres.AbateRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{abates: abates, logger: logger}
}

// Resumo computes the summary over the filtered events in a single pass.
func (s *Service) Resumo(ctx context.Context, filter postgres.AbateFilter) (*Resumo, error) {
	abates, err := s.abates.ListFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("resumo do dashboard: %w", err)
	}

	resumo := &Resumo{
		AbatesPorCategoria: []PorCategoria{},
		AbatesPorMes:       []PorMes{},
	}
	categorias := make(map[string]int)
	meses := make(map[string]*PorMes)
	var somaArroba float64

	for _, a := range abates {
		resumo.TotalAbates++
		resumo.TotalAnimais += a.Quantidade
		resumo.ValorTotalAcerto += a.ValorTotalAcerto
		somaArroba += a.ValorArrobaNegociada

		categoria := "Sem categoria"
		if a.CategoriaAnimal != nil {
			categoria = a.CategoriaAnimal.Nome
		}
		categorias[categoria] += a.Quantidade

		if len(a.DataAbate) >= 7 {
			mes := a.DataAbate[:7]
			bucket, ok := meses[mes]
			if !ok {
				bucket = &PorMes{Mes: mes}
				meses[mes] = bucket
			}
			bucket.Quantidade += a.Quantidade
			bucket.Valor += a.ValorTotalAcerto
		}

		if a.Trace {
			resumo.Bonificacoes.Trace++
		}
		if a.Hilton {
			resumo.Bonificacoes.Hilton++
		}
		if a.NovilhoPrecoce {
			resumo.Bonificacoes.NovilhoPrecoce++
		}
	}

	if resumo.TotalAbates > 0 {
		resumo.MediaArrobaNegociada = somaArroba / float64(resumo.TotalAbates)
	}

	for categoria, quantidade := range categorias {
		resumo.AbatesPorCategoria = append(resumo.AbatesPorCategoria, PorCategoria{Categoria: categoria, Quantidade: quantidade})
	}
	sort.Slice(resumo.AbatesPorCategoria, func(i, j int) bool {
		return resumo.AbatesPorCategoria[i].Categoria < resumo.AbatesPorCategoria[j].Categoria
	})

	for _, bucket := range meses {
		resumo.AbatesPorMes = append(resumo.AbatesPorMes, *bucket)
	}
	sort.Slice(resumo.AbatesPorMes, func(i, j int) bool {
		return resumo.AbatesPorMes[i].Mes < resumo.AbatesPorMes[j].Mes
	})

	return resumo, nil
}
