package importacao

import (
	"context"
	"testing"

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

func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Produtor{Nome: "João da Silva"}).Error)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Frigorífico Central"}).Error)
	require.NoError(t, db.Create(&models.CategoriaAnimal{Nome: "Boi Castrado"}).Error)
}

const sampleCSV = "data_abate,nome_lote,quantidade,valor_arroba_negociada,valor_total_acerto,id_produtor,id_frigorifico,id_categoria_animal,trace,hilton,novilho_precoce\n" +
	"2024-03-15,Lote A,40,310.5,186300,1,1,1,sim,nao,0\n" +
	"2024-03-18,Lote B,25,305,114375,1,1,1,0,1,não\n"

func TestPreview(t *testing.T) {
	svc := NewService(nil, nil)

	preview, err := svc.Preview("abates.csv", []byte(sampleCSV))
	require.NoError(t, err)

	assert.Len(t, preview.Headers, 11)
	assert.Equal(t, 2, preview.TotalRows)
	assert.Len(t, preview.Mapping, 11)
	assert.Len(t, preview.Sample, 2)
}

func TestPreviewRejectsUnknownFormat(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Preview("abates.pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRunImportsWholeBatch(t *testing.T) {
	db := setupTestDB(t)
	seedLookups(t, db)
	svc := NewService(postgres.NewAbateRepository(db), nil)

	rows, err := ParseFile("abates.csv", []byte(sampleCSV))
	require.NoError(t, err)
	mapping := AutoMap(rows[0])

	result, validationErrs, err := svc.Run(context.Background(), "abates.csv", []byte(sampleCSV), mapping)
	require.NoError(t, err)
	require.Empty(t, validationErrs)
	assert.Equal(t, 2, result.Success)
	assert.Zero(t, result.Errors)

	var count int64
	require.NoError(t, db.Model(&models.Abate{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var first models.Abate
	require.NoError(t, db.Where("nome_lote = ?", "Lote A").First(&first).Error)
	assert.Equal(t, "2024-03-15", first.DataAbate)
	assert.Equal(t, 40, first.Quantidade)
	assert.True(t, first.Trace)
	assert.False(t, first.Hilton)
	assert.False(t, first.NovilhoPrecoce)
}

// Spreadsheets carry no farm column, so imported rows persist with a null
// id_propriedade. sqlite only checks foreign keys when asked, which is how a
// non-null farm FK once slipped past this suite while failing on Postgres.
func TestRunPersistsWithForeignKeysEnforced(t *testing.T) {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	seedLookups(t, db)
	svc := NewService(postgres.NewAbateRepository(db), nil)

	rows, err := ParseFile("abates.csv", []byte(sampleCSV))
	require.NoError(t, err)

	result, validationErrs, err := svc.Run(context.Background(), "abates.csv", []byte(sampleCSV), AutoMap(rows[0]))
	require.NoError(t, err)
	require.Empty(t, validationErrs)
	assert.Equal(t, 2, result.Success)

	var abates []models.Abate
	require.NoError(t, db.Find(&abates).Error)
	require.Len(t, abates, 2)
	for _, a := range abates {
		assert.Nil(t, a.IDPropriedade)
	}
}

func TestRunBlocksPersistOnValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	seedLookups(t, db)
	svc := NewService(postgres.NewAbateRepository(db), nil)

	bad := "data_abate,quantidade,valor_arroba_negociada,valor_total_acerto,id_produtor,id_frigorifico,id_categoria_animal\n" +
		"2024-03-15,0,310.5,186300,1,1,1\n"
	rows, err := ParseFile("abates.csv", []byte(bad))
	require.NoError(t, err)
	mapping := AutoMap(rows[0])

	result, validationErrs, err := svc.Run(context.Background(), "abates.csv", []byte(bad), mapping)
	require.NoError(t, err)
	assert.Nil(t, result)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, string(FieldQuantidade), validationErrs[0].Field)
	assert.Equal(t, 2, validationErrs[0].Row)

	var count int64
	require.NoError(t, db.Model(&models.Abate{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRunRequiresMapping(t *testing.T) {
	svc := NewService(nil, nil)

	_, _, err := svc.Run(context.Background(), "abates.csv", []byte(sampleCSV), NewMapping(nil))
	assert.Error(t, err)
}

func TestProcessReportsCoercionErrors(t *testing.T) {
	svc := NewService(nil, nil)
	rows := [][]string{
		{"quantidade", "valor_total_acerto"},
		{"quarenta", "186300"},
	}
	mapping := AutoMap(rows[0])

	items, errs := svc.Process(rows, mapping)

	require.Len(t, items, 1)
	assert.Zero(t, items[0].Quantidade)

	var coercion []ValidationError
	for _, e := range errs {
		if e.Field == string(FieldQuantidade) && e.Message == `valor numérico inválido "quarenta"` {
			coercion = append(coercion, e)
		}
	}
	require.Len(t, coercion, 1)
	assert.Equal(t, 2, coercion[0].Row)
}
