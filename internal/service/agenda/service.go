package agenda

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
	"github.com/pecbr/acaboi/pkg/formatters"
)

// Filter narrows the weekly calendar to one slaughterhouse, producer or
// technician. Zero values mean "no filter".
type Filter struct {
	IDFrigorifico uint
	IDProdutor    uint
	IDTecnico     uint
}

// Dia is one working-day column of the calendar, Monday through Saturday.
type Dia struct {
	Data            string               `json:"data"`
	DiaSemana       string               `json:"dia_semana"`
	Abates          []models.AgendaAbate `json:"abates"`
	TotalQuantidade int                  `json:"total_quantidade"`
}

// Semana is the assembled weekly calendar.
type Semana struct {
	Ano             int    `json:"ano"`
	Semana          int    `json:"semana"`
	Inicio          string `json:"inicio"`
	Fim             string `json:"fim"`
	Dias            []Dia  `json:"dias"`
	TotalQuantidade int    `json:"total_quantidade"`
}

// Opcoes feeds the week/year pickers.
type Opcoes struct {
	Ano         int `json:"ano"`
	Semanas     int `json:"semanas"`
	SemanaAtual int `json:"semana_atual"`
}

// Service assembles the weekly calendar from schedule entries.
type Service struct {
	escalas postgres.EscalaRepository
	logger  *zap.Logger
}

// NewService wires a new agenda service instance.
func NewService(escalas postgres.EscalaRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{escalas: escalas, logger: logger}
}

// Opcoes returns the picker bounds for the given year.
func (s *Service) Opcoes(ano int) Opcoes {
	return Opcoes{Ano: ano, Semanas: WeeksInYear(ano), SemanaAtual: CurrentWeek()}
}

// Semana builds the calendar for one week of one year. Entries are fetched
// for the Monday-to-Saturday window and bucketed per day; entries whose
// slaughter date falls outside the working days (or cannot be parsed) are
// dropped from the grid.
func (s *Service) Semana(ctx context.Context, ano, semana int, filter Filter) (*Semana, error) {
	monday, saturday := WeekRange(ano, semana)

	escalas, err := s.escalas.ListFiltered(ctx, postgres.EscalaFilter{
		DataInicio:    monday.Format("2006-01-02"),
		DataFim:       saturday.Format("2006-01-02"),
		IDFrigorifico: filter.IDFrigorifico,
		IDProdutor:    filter.IDProdutor,
		IDTecnico:     filter.IDTecnico,
	})
	if err != nil {
		return nil, fmt.Errorf("agenda da semana %d/%d: %w", semana, ano, err)
	}

	week := &Semana{
		Ano:    ano,
		Semana: semana,
		Inicio: monday.Format("2006-01-02"),
		Fim:    saturday.Format("2006-01-02"),
		Dias:   make([]Dia, 6),
	}
	for i := range week.Dias {
		day := monday.AddDate(0, 0, i)
		week.Dias[i] = Dia{
			Data:      day.Format("2006-01-02"),
			DiaSemana: formatters.FormatDayOfWeek(day.Weekday().String()),
			Abates:    []models.AgendaAbate{},
		}
	}

	for _, e := range escalas {
		dataAbate, err := formatters.ParseDateLocal(e.DataAbate)
		if err != nil {
			s.logger.Warn("escala com data de abate ilegível",
				zap.Uint("id", e.ID), zap.String("data_abate", e.DataAbate))
			continue
		}
		// Columns follow the weekday, Monday first; Sunday has no column.
		idx := int(dataAbate.Weekday()) - 1
		if idx < 0 {
			continue
		}
		week.Dias[idx].Abates = append(week.Dias[idx].Abates, project(e))
		week.Dias[idx].TotalQuantidade += e.Quantidade
		week.TotalQuantidade += e.Quantidade
	}

	return week, nil
}

// project flattens one schedule entry into the calendar row, resolving the
// joined names and the computed week fields.
func project(e models.EscalaAbate) models.AgendaAbate {
	a := models.AgendaAbate{
		ID:             e.ID,
		TipoServico:    e.TipoServico,
		DataEmbarque:   e.DataEmbarque,
		DataAbate:      e.DataAbate,
		Quantidade:     e.Quantidade,
		Categoria:      e.Categoria,
		Municipio:      e.Municipio,
		PrecoArroba:    e.PrecoArroba,
		PrecoCabeca:    e.PrecoCabeca,
		TipoNegociacao: e.TipoNegociacao,
		FormaPagamento: e.FormaPagamento,
		Observacoes:    e.Observacoes,

		IDFrigorifico:        e.IDFrigorifico,
		IDProdutor:           e.IDProdutor,
		IDPropriedade:        e.IDPropriedade,
		IDTecnicoNegociador:  e.IDTecnicoNegociador,
		IDTecnicoResponsavel: e.IDTecnicoResponsavel,
	}
	if e.Frigorifico != nil {
		a.FrigorificoNome = e.Frigorifico.Nome
	}
	if e.Produtor != nil {
		a.ProdutorNome = e.Produtor.Nome
	}
	if e.Propriedade != nil {
		a.PropriedadeNome = e.Propriedade.Nome
	}
	if t := e.TecnicoNegociador; t != nil {
		a.TecnicoNegociadorEmpresa = &t.Empresa
		if t.Usuario != nil {
			a.TecnicoNegociadorNome = &t.Usuario.Name
		}
	}
	if t := e.TecnicoResponsavel; t != nil {
		a.TecnicoResponsavelEmpresa = &t.Empresa
		if t.Usuario != nil {
			a.TecnicoResponsavelNome = &t.Usuario.Name
		}
	}

	if dataAbate, err := formatters.ParseDateLocal(e.DataAbate); err == nil {
		a.Semana = WeekOf(dataAbate)
		a.Ano = dataAbate.Year()
		a.DiaSemana = formatters.FormatDayOfWeek(dataAbate.Weekday().String())
	}
	return a
}
