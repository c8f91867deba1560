package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
	"github.com/pecbr/acaboi/pkg/clients/gotrue"
)

// fakeAPI stands in for the GoTrue client.
type fakeAPI struct {
	users         map[string]string // id -> email
	failSignIn    bool
	deleted       []string
	updatedAttrs  map[string]any
	nextID        string
	tokenUserID   string
	failUserToken bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{users: map[string]string{}}
}

func (f *fakeAPI) SignIn(_ context.Context, email, _ string) (*gotrue.Session, error) {
	if f.failSignIn {
		return nil, errors.New("invalid login credentials")
	}
	return &gotrue.Session{
		AccessToken: "token",
		User:        gotrue.User{ID: f.tokenUserID, Email: email},
	}, nil
}

func (f *fakeAPI) SignOut(context.Context, string) error { return nil }

func (f *fakeAPI) RecoverPassword(context.Context, string) error { return nil }

func (f *fakeAPI) UserFromToken(context.Context, string) (*gotrue.User, error) {
	if f.failUserToken {
		return nil, errors.New("invalid token")
	}
	return &gotrue.User{ID: f.tokenUserID}, nil
}

func (f *fakeAPI) AdminCreateUser(_ context.Context, email, _ string, _ map[string]any) (*gotrue.User, error) {
	f.users[f.nextID] = email
	return &gotrue.User{ID: f.nextID, Email: email}, nil
}

func (f *fakeAPI) AdminUpdateUser(_ context.Context, id string, attrs map[string]any) error {
	f.updatedAttrs = attrs
	return nil
}

func (f *fakeAPI) AdminDeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.users, id)
	return nil
}

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

func newAuthService(t *testing.T) (*Service, *fakeAPI, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	api := newFakeAPI()
	return NewService(api, postgres.NewProfileRepository(db), nil), api, db
}

func seedProfile(t *testing.T, db *gorm.DB, role string, active bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		ID:     id,
		Email:  id.String() + "@pecbr.com.br",
		Name:   "Usuário Teste",
		Type:   role,
		Active: active,
	}).Error)
	return id
}

func TestLoginResolvesProfile(t *testing.T) {
	svc, api, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleTecnico, true)
	api.tokenUserID = id.String()

	result, err := svc.Login(context.Background(), "tecnico@pecbr.com.br", "senha")
	require.NoError(t, err)

	assert.Equal(t, "token", result.Session.AccessToken)
	assert.Equal(t, models.RoleTecnico, result.Profile.Type)
}

func TestLoginRejectsInactiveProfile(t *testing.T) {
	svc, api, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleTecnico, false)
	api.tokenUserID = id.String()

	_, err := svc.Login(context.Background(), "tecnico@pecbr.com.br", "senha")
	assert.ErrorIs(t, err, ErrUsuarioInativo)
}

func TestLoginPropagatesBadCredentials(t *testing.T) {
	svc, api, _ := newAuthService(t)
	api.failSignIn = true

	_, err := svc.Login(context.Background(), "x@pecbr.com.br", "errada")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	svc, api, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleAdmin, true)
	api.tokenUserID = id.String()

	profile, err := svc.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)

	api.failUserToken = true
	_, err = svc.Verify(context.Background(), "token")
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	svc, api, db := newAuthService(t)
	api.nextID = uuid.NewString()

	profile, err := svc.CreateUser(context.Background(), UserInput{
		Email:    "novo@pecbr.com.br",
		Password: "senha-forte",
		Name:     "Novo Técnico",
		Type:     models.RoleTecnico,
	})
	require.NoError(t, err)

	assert.Equal(t, api.nextID, profile.ID.String())
	assert.True(t, profile.Active)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, "novo@pecbr.com.br", stored.Email)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.CreateUser(context.Background(), UserInput{Email: "x@pecbr.com.br", Type: "gerente"})
	assert.ErrorIs(t, err, ErrTipoInvalido)
}

func TestCreateUserCompensatesFailedProfileInsert(t *testing.T) {
	svc, api, db := newAuthService(t)
	api.nextID = uuid.NewString()

	// Occupy the email so the profile insert hits the unique index.
	require.NoError(t, db.Create(&models.Profile{
		ID: uuid.New(), Email: "dup@pecbr.com.br", Type: models.RoleTecnico, Active: true,
	}).Error)

	_, err := svc.CreateUser(context.Background(), UserInput{
		Email: "dup@pecbr.com.br", Password: "senha", Type: models.RoleTecnico,
	})
	require.Error(t, err)
	assert.Contains(t, api.deleted, api.nextID)
}

func TestUpdateUserResetsPasswordWhenGiven(t *testing.T) {
	svc, api, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleTecnico, true)

	profile, err := svc.UpdateUser(context.Background(), id, UserInput{
		Name:     "Nome Novo",
		Type:     models.RoleAdmin,
		Password: "outra-senha",
	})
	require.NoError(t, err)

	assert.Equal(t, "Nome Novo", profile.Name)
	assert.Equal(t, models.RoleAdmin, profile.Type)
	assert.Equal(t, "outra-senha", api.updatedAttrs["password"])
}

func TestSetUserActive(t *testing.T) {
	svc, _, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleTecnico, true)

	profile, err := svc.SetUserActive(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, profile.Active)
}

func TestDeleteUserRemovesBothRecords(t *testing.T) {
	svc, api, db := newAuthService(t)
	id := seedProfile(t, db, models.RoleTecnico, true)

	require.NoError(t, svc.DeleteUser(context.Background(), id))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error)
	assert.Zero(t, count)
	assert.Contains(t, api.deleted, id.String())
}
