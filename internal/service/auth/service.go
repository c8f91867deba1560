// Package auth bridges Supabase auth sessions to application profiles and
// implements the admin user management.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/domain/models"
	"github.com/pecbr/acaboi/internal/repository/postgres"
	"github.com/pecbr/acaboi/pkg/clients/gotrue"
)

// ErrUsuarioInativo rejects logins and tokens of deactivated profiles.
var ErrUsuarioInativo = errors.New("usuário desativado")

// ErrTipoInvalido rejects user payloads with an unknown role.
var ErrTipoInvalido = errors.New("tipo de usuário inválido")

// API is the slice of the GoTrue client the service depends on.
type API interface {
	SignIn(ctx context.Context, email, password string) (*gotrue.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	RecoverPassword(ctx context.Context, email string) error
	UserFromToken(ctx context.Context, accessToken string) (*gotrue.User, error)
	AdminCreateUser(ctx context.Context, email, password string, metadata map[string]any) (*gotrue.User, error)
	AdminUpdateUser(ctx context.Context, id string, attrs map[string]any) error
	AdminDeleteUser(ctx context.Context, id string) error
}

// LoginResult couples the auth session with the application profile.
type LoginResult struct {
	Session *gotrue.Session `json:"session"`
	Profile *models.Profile `json:"profile"`
}

// UserInput is the admin user create/update payload.
type UserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// Service implements login, token verification and user management.
type Service struct {
	api      API
	profiles postgres.ProfileRepository
	logger   *zap.Logger
}

// NewService wires a new auth service instance.
func NewService(api API, profiles postgres.ProfileRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, profiles: profiles, logger: logger}
}

// Login performs a password grant and resolves the profile. Deactivated
// profiles cannot sign in even with valid credentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	session, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileFor(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login", zap.String("email", profile.Email), zap.String("type", profile.Type))
	return &LoginResult{Session: session, Profile: profile}, nil
}

// Logout revokes the session behind the access token.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	return s.api.SignOut(ctx, accessToken)
}

// RecoverPassword triggers the password recovery mail.
func (s *Service) RecoverPassword(ctx context.Context, email string) error {
	return s.api.RecoverPassword(ctx, email)
}

// Verify resolves an access token to an active profile.
func (s *Service) Verify(ctx context.Context, accessToken string) (*models.Profile, error) {
	user, err := s.api.UserFromToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return s.profileFor(ctx, user.ID)
}

func (s *Service) profileFor(ctx context.Context, rawID string) (*models.Profile, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("id de usuário inválido %q: %w", rawID, err)
	}
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !profile.Active {
		return nil, ErrUsuarioInativo
	}
	return profile, nil
}

// ListUsers returns every profile.
func (s *Service) ListUsers(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.List(ctx)
}

// CreateUser provisions the auth user and its profile. When the profile
// insert fails the auth user is removed again so the two stores stay in
// step.
func (s *Service) CreateUser(ctx context.Context, input UserInput) (*models.Profile, error) {
	if input.Type != models.RoleAdmin && input.Type != models.RoleTecnico {
		return nil, fmt.Errorf("%w: %q", ErrTipoInvalido, input.Type)
	}

	user, err := s.api.AdminCreateUser(ctx, input.Email, input.Password, map[string]any{"name": input.Name})
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("id de usuário inválido %q: %w", user.ID, err)
	}

	profile := &models.Profile{
		ID:     id,
		Email:  input.Email,
		Name:   input.Name,
		Type:   input.Type,
		Active: true,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if delErr := s.api.AdminDeleteUser(ctx, user.ID); delErr != nil {
			s.logger.Error("compensação de usuário falhou",
				zap.String("id", user.ID), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("usuário criado", zap.String("email", input.Email), zap.String("type", input.Type))
	return profile, nil
}

// UpdateUser changes name and role of a profile; a non-empty password also
// resets the auth credential.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, input UserInput) (*models.Profile, error) {
	if input.Type != "" && input.Type != models.RoleAdmin && input.Type != models.RoleTecnico {
		return nil, fmt.Errorf("%w: %q", ErrTipoInvalido, input.Type)
	}

	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Type != "" {
		profile.Type = input.Type
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	attrs := map[string]any{"user_metadata": map[string]any{"name": profile.Name}}
	if input.Password != "" {
		attrs["password"] = input.Password
	}
	if err := s.api.AdminUpdateUser(ctx, id.String(), attrs); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetUserActive toggles the profile's active flag.
func (s *Service) SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*models.Profile, error) {
	return s.profiles.SetActive(ctx, id, active)
}

// DeleteUser removes the profile and the auth user behind it.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.api.AdminDeleteUser(ctx, id.String()); err != nil {
		return fmt.Errorf("perfil removido mas usuário de auth permanece: %w", err)
	}
	return nil
}
