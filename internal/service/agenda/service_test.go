package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	return db
}

func seedEscala(t *testing.T, db *gorm.DB, dataAbate string, quantidade int) *models.EscalaAbate {
	t.Helper()
	e := &models.EscalaAbate{
		TipoServico:   "ABATE",
		DataAbate:     dataAbate,
		IDFrigorifico: 1,
		IDProdutor:    1,
		IDPropriedade: 1,
		Quantidade:    quantidade,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func newAgendaService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Produtor{Nome: "João da Silva"}).Error)
	require.NoError(t, db.Create(&models.Propriedade{IDProdutor: 1, Nome: "Fazenda Boa Vista"}).Error)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Frigorífico Central"}).Error)
	return NewService(postgres.NewEscalaRepository(db), nil), db
}

func TestSemanaBucketsEntriesPerDay(t *testing.T) {
	svc, db := newAgendaService(t)
	// Week 11 of 2024 runs Monday 2024-03-11 through Saturday 2024-03-16.
	seedEscala(t, db, "2024-03-11", 30)
	seedEscala(t, db, "2024-03-13", 20)
	seedEscala(t, db, "2024-03-16", 10)
	seedEscala(t, db, "2024-03-18", 99) // next week, must not appear

	week, err := svc.Semana(context.Background(), 2024, 11, Filter{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-11", week.Inicio)
	assert.Equal(t, "2024-03-16", week.Fim)
	require.Len(t, week.Dias, 6)

	assert.Equal(t, "Segunda-feira", week.Dias[0].DiaSemana)
	assert.Equal(t, "Sábado", week.Dias[5].DiaSemana)

	assert.Equal(t, 30, week.Dias[0].TotalQuantidade)
	assert.Empty(t, week.Dias[1].Abates)
	assert.Equal(t, 20, week.Dias[2].TotalQuantidade)
	assert.Equal(t, 10, week.Dias[5].TotalQuantidade)
	assert.Equal(t, 60, week.TotalQuantidade)
}

func TestSemanaColumnFollowsWeekday(t *testing.T) {
	svc, db := newAgendaService(t)
	// One entry per working day of week 11 of 2024.
	for i := 0; i < 6; i++ {
		day := time.Date(2024, 3, 11+i, 0, 0, 0, 0, time.Local)
		seedEscala(t, db, day.Format("2006-01-02"), 5)
	}

	week, err := svc.Semana(context.Background(), 2024, 11, Filter{})
	require.NoError(t, err)

	for i, dia := range week.Dias {
		require.Len(t, dia.Abates, 1, "coluna %d", i)
		assert.Equal(t, dia.Data, dia.Abates[0].DataAbate)
		assert.Equal(t, dia.DiaSemana, dia.Abates[0].DiaSemana)
	}
}

func TestSemanaProjectsJoinedNames(t *testing.T) {
	svc, db := newAgendaService(t)
	seedEscala(t, db, "2024-03-11", 30)

	week, err := svc.Semana(context.Background(), 2024, 11, Filter{})
	require.NoError(t, err)

	require.Len(t, week.Dias[0].Abates, 1)
	entry := week.Dias[0].Abates[0]
	assert.Equal(t, "Frigorífico Central", entry.FrigorificoNome)
	assert.Equal(t, "João da Silva", entry.ProdutorNome)
	assert.Equal(t, "Fazenda Boa Vista", entry.PropriedadeNome)
	assert.Equal(t, 11, entry.Semana)
	assert.Equal(t, 2024, entry.Ano)
	assert.Equal(t, "Segunda-feira", entry.DiaSemana)
}

func TestSemanaFiltersByFrigorifico(t *testing.T) {
	svc, db := newAgendaService(t)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Frigorífico Sul"}).Error)
	seedEscala(t, db, "2024-03-11", 30)
	other := seedEscala(t, db, "2024-03-12", 15)
	other.IDFrigorifico = 2
	require.NoError(t, db.Save(other).Error)

	week, err := svc.Semana(context.Background(), 2024, 11, Filter{IDFrigorifico: 2})
	require.NoError(t, err)

	assert.Equal(t, 15, week.TotalQuantidade)
	assert.Empty(t, week.Dias[0].Abates)
	require.Len(t, week.Dias[1].Abates, 1)
}

func TestSemanaEmptyWeek(t *testing.T) {
	svc, _ := newAgendaService(t)

	week, err := svc.Semana(context.Background(), 2024, 30, Filter{})
	require.NoError(t, err)

	assert.Zero(t, week.TotalQuantidade)
	for _, dia := range week.Dias {
		assert.NotNil(t, dia.Abates)
		assert.Empty(t, dia.Abates)
	}
}

func TestOpcoes(t *testing.T) {
	svc, _ := newAgendaService(t)

	opts := svc.Opcoes(2024)

	assert.Equal(t, 2024, opts.Ano)
	assert.Equal(t, 53, opts.Semanas)
	assert.Positive(t, opts.SemanaAtual)
	assert.LessOrEqual(t, opts.SemanaAtual, 53)
}
