package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
	"github.com/pecbr/acaboi/internal/server/handlers"
	"github.com/pecbr/acaboi/internal/server/router"
	agendasvc "github.com/pecbr/acaboi/internal/service/agenda"
	authsvc "github.com/pecbr/acaboi/internal/service/auth"
	dashboardsvc "github.com/pecbr/acaboi/internal/service/dashboard"
	importacaosvc "github.com/pecbr/acaboi/internal/service/importacao"
	relatoriosvc "github.com/pecbr/acaboi/internal/service/relatorio"
	"github.com/pecbr/acaboi/pkg/clients/gotrue"
)

// fakeVerifier maps bearer tokens straight to profiles.
type fakeVerifier struct {
	profiles map[string]*models.Profile
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*models.Profile, error) {
	if p, ok := f.profiles[token]; ok {
		return p, nil
	}
	return nil, errors.New("invalid token")
}

// fakeAuthAPI satisfies the auth service dependency; the tests here never
// reach GoTrue.
type fakeAuthAPI struct{}

func (fakeAuthAPI) SignIn(context.Context, string, string) (*gotrue.Session, error) {
	return nil, errors.New("not wired in tests")
}
func (fakeAuthAPI) SignOut(context.Context, string) error         { return nil }
func (fakeAuthAPI) RecoverPassword(context.Context, string) error { return nil }
func (fakeAuthAPI) UserFromToken(context.Context, string) (*gotrue.User, error) {
	return nil, errors.New("not wired in tests")
}
func (fakeAuthAPI) AdminCreateUser(_ context.Context, email, _ string, _ map[string]any) (*gotrue.User, error) {
	return &gotrue.User{ID: uuid.NewString(), Email: email}, nil
}
func (fakeAuthAPI) AdminUpdateUser(context.Context, string, map[string]any) error { return nil }
func (fakeAuthAPI) AdminDeleteUser(context.Context, string) error                 { return nil }

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

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	produtorRepo := postgres.NewProdutorRepository(db)
	propriedadeRepo := postgres.NewPropriedadeRepository(db)
	frigorificoRepo := postgres.NewFrigorificoRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	abateRepo := postgres.NewAbateRepository(db)
	escalaRepo := postgres.NewEscalaRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	authService := authsvc.NewService(fakeAuthAPI{}, profileRepo, nil)

	verifier := &fakeVerifier{profiles: map[string]*models.Profile{
		"admin-token": {ID: uuid.New(), Email: "admin@pecbr.com.br", Type: models.RoleAdmin, Active: true},
		"tec-token":   {ID: uuid.New(), Email: "tec@pecbr.com.br", Type: models.RoleTecnico, Active: true},
	}}

	engine := router.New(router.Handlers{
		Auth:        handlers.NewAuthHandler(authService, nil),
		Produtor:    handlers.NewProdutorHandler(produtorRepo, nil),
		Propriedade: handlers.NewPropriedadeHandler(propriedadeRepo, nil),
		Frigorifico: handlers.NewFrigorificoHandler(frigorificoRepo, nil),
		Categoria:   handlers.NewCategoriaHandler(categoriaRepo, nil),
		Abate:       handlers.NewAbateHandler(abateRepo, nil),
		Escala:      handlers.NewEscalaHandler(escalaRepo, nil),
		Agenda:      handlers.NewAgendaHandler(agendasvc.NewService(escalaRepo, nil), nil),
		Importacao:  handlers.NewImportacaoHandler(importacaosvc.NewService(abateRepo, nil), nil),
		Relatorio:   handlers.NewRelatorioHandler(relatoriosvc.NewService(abateRepo, nil), nil),
		Dashboard:   handlers.NewDashboardHandler(dashboardsvc.NewService(abateRepo, nil), nil),
		User:        handlers.NewUserHandler(authService, nil),
	}, verifier, nil)

	return engine, db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProdutorCRUD(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/produtores", "admin-token", map[string]any{
		"nome":   "João da Silva",
		"cidade": "Campo Grande",
		"cnpj":   "12.345.678/0001-00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Produtor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(t, engine, http.MethodGet, "/api/produtores", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Produtor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "João da Silva", listed[0].Nome)

	w = doJSON(t, engine, http.MethodPut, "/api/produtores/1", "admin-token", map[string]any{
		"nome":   "João da Silva Filho",
		"cidade": "Campo Grande",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/produtores/1", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Produtor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "João da Silva Filho", fetched.Nome)

	w = doJSON(t, engine, http.MethodDelete, "/api/produtores/1", "admin-token", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/produtores/1", "admin-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticatedGets401(t *testing.T) {
	engine, _ := newTestServer(t)

	for _, path := range []string{"/api/produtores", "/api/abates", "/api/agenda", "/api/usuarios"} {
		w := doJSON(t, engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path=%s", path)
	}
}

func TestTecnicoBlockedFromAdminPages(t *testing.T) {
	engine, _ := newTestServer(t)

	for _, path := range []string{"/api/produtores", "/api/abates", "/api/usuarios", "/api/dashboard"} {
		w := doJSON(t, engine, http.MethodGet, path, "tec-token", nil)
		require.Equal(t, http.StatusForbidden, w.Code, "path=%s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "acesso restrito", body["error"], "path=%s", path)
	}
}

func TestTecnicoReachesEscalaAndAgenda(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/escala", "tec-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/agenda?ano=2024&semana=11", "tec-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicAgendaNeedsNoToken(t *testing.T) {
	engine, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Frigorífico Central"}).Error)
	require.NoError(t, db.Create(&models.Produtor{Nome: "Ana"}).Error)
	require.NoError(t, db.Create(&models.Propriedade{IDProdutor: 1, Nome: "Fazenda"}).Error)
	require.NoError(t, db.Create(&models.EscalaAbate{
		TipoServico: "ABATE", DataAbate: "2024-03-11",
		IDFrigorifico: 1, IDProdutor: 1, IDPropriedade: 1, Quantidade: 25,
	}).Error)

	w := doJSON(t, engine, http.MethodGet, "/api/agenda/publica?ano=2024&semana=11", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var week agendasvc.Semana
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	assert.Equal(t, 25, week.TotalQuantidade)
}

func TestAgendaRejectsWeekOutOfRange(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/agenda/publica?ano=2025&semana=60", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportPreviewAndCommit(t *testing.T) {
	engine, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Produtor{Nome: "Ana"}).Error)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Central"}).Error)
	require.NoError(t, db.Create(&models.CategoriaAnimal{Nome: "Boi"}).Error)

	csv := "data_abate,quantidade,valor_arroba_negociada,valor_total_acerto,id_produtor,id_frigorifico,id_categoria_animal\n" +
		"2024-03-15,40,310.5,186300,1,1,1\n"

	w := doMultipart(t, engine, "/api/importacao/preview", "admin-token", csv, "")
	require.Equal(t, http.StatusOK, w.Code)

	var preview importacaosvc.Preview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.Equal(t, 1, preview.TotalRows)
	require.Len(t, preview.Mapping, 7)

	mapping, err := json.Marshal(preview.Mapping)
	require.NoError(t, err)

	w = doMultipart(t, engine, "/api/importacao", "admin-token", csv, string(mapping))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Abate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImportValidationErrorsAnswer422(t *testing.T) {
	engine, db := newTestServer(t)

	csv := "data_abate,quantidade,valor_arroba_negociada,valor_total_acerto,id_produtor,id_frigorifico,id_categoria_animal\n" +
		"2024-03-15,0,310.5,186300,1,1,1\n"
	mapping := `[{"sheet_column":"data_abate","db_field":"data_abate"},` +
		`{"sheet_column":"quantidade","db_field":"quantidade"},` +
		`{"sheet_column":"valor_arroba_negociada","db_field":"valor_arroba_negociada"},` +
		`{"sheet_column":"valor_total_acerto","db_field":"valor_total_acerto"},` +
		`{"sheet_column":"id_produtor","db_field":"id_produtor"},` +
		`{"sheet_column":"id_frigorifico","db_field":"id_frigorifico"},` +
		`{"sheet_column":"id_categoria_animal","db_field":"id_categoria_animal"}]`

	w := doMultipart(t, engine, "/api/importacao", "admin-token", csv, mapping)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Abate{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRelatorioExportDownloads(t *testing.T) {
	engine, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Produtor{Nome: "Ana"}).Error)
	require.NoError(t, db.Create(&models.Propriedade{IDProdutor: 1, Nome: "Fazenda"}).Error)
	require.NoError(t, db.Create(&models.Frigorifico{Nome: "Central"}).Error)
	require.NoError(t, db.Create(&models.CategoriaAnimal{Nome: "Boi"}).Error)
	propriedade := uint(1)
	require.NoError(t, db.Create(&models.Abate{
		IDProdutor: 1, IDPropriedade: &propriedade, IDFrigorifico: 1, IDCategoriaAnimal: 1,
		DataAbate: "2024-03-15", Quantidade: 40, ValorArrobaNegociada: 310.5, ValorTotalAcerto: 186300,
	}).Error)

	w := doJSON(t, engine, http.MethodGet, "/api/relatorios/export/abates/xlsx", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	w = doJSON(t, engine, http.MethodGet, "/api/relatorios/export/produtores/pdf", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = doJSON(t, engine, http.MethodGet, "/api/relatorios/export/abates/docx", "admin-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserManagement(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/usuarios", "admin-token", map[string]any{
		"email":    "novo@pecbr.com.br",
		"password": "senha-forte",
		"name":     "Novo Técnico",
		"type":     "tecnico",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodPatch, "/api/usuarios/"+created.ID.String()+"/active", "admin-token", map[string]any{
		"active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.False(t, updated.Active)
}

func doMultipart(t *testing.T, engine *gin.Engine, path, token, fileContent, mapping string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", "abates.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(fileContent))
	require.NoError(t, err)

	if mapping != "" {
		require.NoError(t, mw.WriteField("mapping", mapping))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
