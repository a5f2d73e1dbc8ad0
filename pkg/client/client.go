// Package client is the HTTP client SDK used by the mobile apps. It injects
// the bearer token into every request and drops the stored token when the
// server answers 401, forcing a fresh login.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenStore holds the bearer token between requests. The mobile apps back
// this with the platform keychain; MemoryTokenStore suffices for tests and
// CLI usage.
type TokenStore interface {
	Token() string
	SetToken(token string)
	ClearToken()
}

// MemoryTokenStore is an in-memory TokenStore safe for concurrent use.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the training API.
type Client struct {
	http   *resty.Client
	tokens TokenStore
}

// Option configures a Client.
type Option func(*Client)

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// New creates a client for the given base URL, e.g. "https://host/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(15 * time.Second),
		tokens: NewMemoryTokenStore(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := c.tokens.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	// A 401 means the token is expired or revoked-by-deactivation; the
	// stored token is useless either way.
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.tokens.ClearToken()
		}
		return nil
	})

	return c
}

// Tokens exposes the token store, mainly so callers can persist it.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// decode unpacks the envelope, returning an APIError for failures.
func decode(resp *resty.Response, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.IsError() || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// Login authenticates and stores the issued token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := decode(resp, &token); err != nil {
		return nil, err
	}

	c.tokens.SetToken(token.Token)
	return &token, nil
}

// Logout notifies the server and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/auth/logout")
	if err != nil {
		return err
	}
	c.tokens.ClearToken()
	return decode(resp, nil)
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/auth/me")
	if err != nil {
		return nil, err
	}

	var user User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListModules returns the active training modules.
func (c *Client) ListModules(ctx context.Context) ([]Module, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/modules")
	if err != nil {
		return nil, err
	}

	var modules []Module
	if err := decode(resp, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// GetModule returns one training module with its content.
func (c *Client) GetModule(ctx context.Context, moduleID string) (*Module, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/modules/" + moduleID)
	if err != nil {
		return nil, err
	}

	var module Module
	if err := decode(resp, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// StartModule creates (or returns) the caller's progress row for a module.
func (c *Client) StartModule(ctx context.Context, moduleID string) (*Progress, error) {
	resp, err := c.http.R().SetContext(ctx).Post("/progress/" + moduleID + "/start")
	if err != nil {
		return nil, err
	}

	var progress Progress
	if err := decode(resp, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateProgress reports new progress on a started module.
func (c *Client) UpdateProgress(ctx context.Context, moduleID string, update ProgressUpdate) (*Progress, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		Put("/progress/" + moduleID)
	if err != nil {
		return nil, err
	}

	var progress Progress
	if err := decode(resp, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListProgress returns the caller's progress rows.
func (c *Client) ListProgress(ctx context.Context) ([]Progress, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/progress")
	if err != nil {
		return nil, err
	}

	var rows []Progress
	if err := decode(resp, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary returns the caller's aggregate completion numbers.
func (c *Client) Summary(ctx context.Context) (*ProgressSummary, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/progress/summary")
	if err != nil {
		return nil, err
	}

	var summary ProgressSummary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetQuiz returns the quiz for a module, without answers.
func (c *Client) GetQuiz(ctx context.Context, moduleID string) (*Quiz, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/modules/" + moduleID + "/quiz")
	if err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := decode(resp, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// SubmitQuiz grades the given answers server-side.
func (c *Client) SubmitQuiz(ctx context.Context, moduleID string, answers []QuizAnswer) (*QuizResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"answers": answers}).
		Post("/modules/" + moduleID + "/quiz/submit")
	if err != nil {
		return nil, err
	}

	var result QuizResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
