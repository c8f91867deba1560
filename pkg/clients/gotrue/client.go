// Package gotrue is a thin client for the Supabase auth (GoTrue) REST API.
// The application delegates all credential handling to it: password logins,
// logout, recovery mails and the admin user-management endpoints.
package gotrue

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pecbr/acaboi/internal/config"
)

// User mirrors the GoTrue user object fields the application consumes.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// Session is the token bundle returned by a password grant.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// apiError represents a GoTrue error payload. The service answers with
// different shapes depending on the endpoint, so all known fields are read.
type apiError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *apiError) text() string {
	for _, s := range []string{e.Message, e.Msg, e.ErrorDescription, e.ErrorField} {
		if s != "" {
			return s
		}
	}
	return "unknown auth error"
}

// Client exposes the GoTrue operations used by the application.
type Client struct {
	httpClient *resty.Client
	anonKey    string
	serviceKey string
}

// NewClient builds a GoTrue client from the Supabase configuration values.
func NewClient(cfg config.SupabaseConfig) *Client {
	base := strings.TrimSuffix(cfg.URL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base + "/auth/v1").
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{
		httpClient: restyClient,
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
	}
}

func (c *Client) check(resp *resty.Response, apiErr *apiError, op string) error {
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("gotrue %s: status=%d, message=%s", op, resp.StatusCode(), apiErr.text())
	}
	return nil
}

// SignIn performs a password grant and returns the session tokens.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	session := new(Session)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(session).
		SetError(apiErr).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if err := c.check(resp, apiErr, "sign in"); err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut revokes the session behind the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetError(apiErr).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return c.check(resp, apiErr, "sign out")
}

// RecoverPassword asks GoTrue to send a password recovery mail.
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetBody(map[string]string{"email": email}).
		SetError(apiErr).
		Post("/recover")
	if err != nil {
		return fmt.Errorf("recover password: %w", err)
	}
	return c.check(resp, apiErr, "recover password")
}

// UserFromToken resolves the user owning the given access token.
func (c *Client) UserFromToken(ctx context.Context, accessToken string) (*User, error) {
	user := new(User)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(user).
		SetError(apiErr).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("user from token: %w", err)
	}
	if err := c.check(resp, apiErr, "user from token"); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminCreateUser creates a confirmed auth user. Requires the service key.
func (c *Client) AdminCreateUser(ctx context.Context, email, password string, metadata map[string]any) (*User, error) {
	user := new(User)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.serviceKey).
		SetHeader("Authorization", "Bearer "+c.serviceKey).
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
			"user_metadata": metadata,
		}).
		SetResult(user).
		SetError(apiErr).
		Post("/admin/users")
	if err != nil {
		return nil, fmt.Errorf("admin create user: %w", err)
	}
	if err := c.check(resp, apiErr, "admin create user"); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminUpdateUser patches metadata and/or password of an auth user.
func (c *Client) AdminUpdateUser(ctx context.Context, id string, attrs map[string]any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.serviceKey).
		SetHeader("Authorization", "Bearer "+c.serviceKey).
		SetBody(attrs).
		SetError(apiErr).
		Put("/admin/users/" + id)
	if err != nil {
		return fmt.Errorf("admin update user %s: %w", id, err)
	}
	return c.check(resp, apiErr, "admin update user")
}

// AdminDeleteUser removes an auth user. Used to compensate a failed profile
// insert after user creation.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("apikey", c.serviceKey).
		SetHeader("Authorization", "Bearer "+c.serviceKey).
		SetError(apiErr).
		Delete("/admin/users/" + id)
	if err != nil {
		return fmt.Errorf("admin delete user %s: %w", id, err)
	}
	return c.check(resp, apiErr, "admin delete user")
}
