// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the barbershop-appointment
// service. The service is an opaque remote collaborator: this package only
// knows its endpoints, payload shapes, and bearer-token scheme.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for the remote API.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxRetries is the number of attempts for transient errors.
	DefaultMaxRetries = 3

	// MaxResponseSize bounds response bodies; the service only ever returns
	// small JSON records.
	MaxResponseSize = 1 << 20 // 1MB
)

// sharedHTTPClient is used for all API requests. Connection pooling reduces
// TCP handshake overhead across the five form flows.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for common API failures.
var (
	// ErrUnauthorized indicates the service rejected the credentials.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrUnavailable indicates the service could not be reached.
	ErrUnavailable = errors.New("service unavailable")
)

// APIError represents a non-2xx response from the service.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (HTTP %d)", e.Status)
}

// apiErrorResponse is the error body shape the service returns.
type apiErrorResponse struct {
	Message string `json:"message"`
}

// User is the profile record the service returns for an authenticated user.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Credentials is the payload of a successful sign-in.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate is the body of PUT /profile. The three password fields are
// omitted from the request entirely when OldPassword is empty, so a
// name/email-only edit never touches the password.
type ProfileUpdate struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// Client is the HTTP client for the appointment service.
//
// Once a session token is applied with SetToken, every request carries it as
// a bearer credential until ClearToken is called.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	limiter    *rate.Limiter
	log        *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		maxRetries: DefaultMaxRetries,
		// The UI is single-user; the limiter only guards against runaway
		// retry storms, not fan-out.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     log,
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	client := *c.httpClient
	client.Timeout = timeout
	c.httpClient = &client
	return c
}

// WithMaxRetries sets the maximum number of attempts for transient errors.
func (c *Client) WithMaxRetries(n int) *Client {
	c.maxRetries = n
	return c
}

// SetBaseURL repoints the client at another service address. In-flight
// requests finish against the old one.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// BaseURL returns the current service address.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetToken applies token as the default outbound bearer credential.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the default outbound credential.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the currently applied bearer credential, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// CreateSession exchanges credentials for a session token and user record.
// POST /sessions. A rejection maps to ErrUnauthorized.
func (c *Client) CreateSession(ctx context.Context, email, password string) (Credentials, error) {
	body := map[string]string{"email": email, "password": password}

	var creds Credentials
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", body, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// CreateUser registers a new account. POST /users. The created-user payload
// is not consumed by any caller, so it is discarded.
func (c *Client) CreateUser(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/users", body, nil)
}

// ForgotPassword requests a password-recovery email. POST /password/forgot.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/password/forgot", body, nil)
}

// ResetPassword redeems a recovery token for a new password.
// POST /password/reset.
func (c *Client) ResetPassword(ctx context.Context, password, confirmation, token string) error {
	body := map[string]string{
		"password":              password,
		"password_confirmation": confirmation,
		"token":                 token,
	}
	return c.doJSON(ctx, http.MethodPost, "/password/reset", body, nil)
}

// UpdateProfile updates the signed-in user's profile. PUT /profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, "/profile", update, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateAvatar uploads a new avatar image as a multipart body with a single
// "avatar" file field. PATCH /users/avatar.
func (c *Client) UpdateAvatar(ctx context.Context, filename string, content io.Reader) (User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return User{}, fmt.Errorf("build avatar form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return User{}, fmt.Errorf("read avatar file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return User{}, fmt.Errorf("finish avatar form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.BaseURL()+"/users/avatar", &buf)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var user User
	if err := c.decodeResponse(resp, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// doJSON sends a JSON request and decodes the JSON response into out (which
// may be nil for endpoints with no meaningful body). Transient 5xx failures
// are retried with exponential backoff; everything else returns immediately.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		c.setAuth(req)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		} else {
			c.log.Debug("api response",
				"method", method, "path", path,
				"status", resp.StatusCode, "duration", time.Since(start))

			if resp.StatusCode < 500 {
				return c.decodeResponse(resp, out)
			}
			lastErr = &APIError{Status: resp.StatusCode}
			resp.Body.Close()
		}

		if attempt == c.maxRetries-1 {
			break
		}
		// Exponential backoff: 500ms, 1s, 2s.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(1<<attempt) * 500 * time.Millisecond):
		}
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeResponse maps status codes to errors and decodes a 2xx body into out.
// It always drains and closes the body.
func (c *Client) decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		apiErr := &APIError{Status: resp.StatusCode}
		var parsed apiErrorResponse
		if json.Unmarshal(data, &parsed) == nil {
			apiErr.Message = parsed.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// setAuth attaches the bearer credential when a session is active.
func (c *Client) setAuth(req *http.Request) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", "barberdesk/1.0")
}
