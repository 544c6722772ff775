// Package client is a typed HTTP client for the photocards API. It mirrors
// the backend routes one method per call and keeps the bearer token issued
// by SignIn.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// User as returned by the API. Email is only set on the caller's own profile.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email,omitempty"`
}

type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignUpInput carries registration fields. Empty profile fields get server
// defaults.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	About    string `json:"about,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Code    int
	Message string
	Details map[string]string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("photocards: status %d", e.Code)
	}
	return fmt.Sprintf("photocards: status %d: %s", e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithToken presets the bearer token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithHeader adds a header sent on every request
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("photocards: invalid base URL %q", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the bearer token in use, empty before SignIn
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) SignUp(ctx context.Context, in SignUpInput) (*User, error) {
	var out dataEnvelope[User]
	if err := c.do(ctx, http.MethodPost, "/signup", in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// SignIn exchanges credentials for a token and keeps it for later calls.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/signin", body, &out); err != nil {
		return "", err
	}
	c.setToken(out.Token)
	return out.Token, nil
}

func (c *Client) GetUserInfo(ctx context.Context) (*User, error) {
	var out dataEnvelope[User]
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateUser(ctx context.Context, name, about string) (*User, error) {
	body := map[string]string{"name": name, "about": about}
	var out dataEnvelope[User]
	if err := c.do(ctx, http.MethodPatch, "/users/me", body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*User, error) {
	body := map[string]string{"avatar": avatar}
	var out dataEnvelope[User]
	if err := c.do(ctx, http.MethodPatch, "/users/me/avatar", body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) GetInitialCards(ctx context.Context) ([]Card, error) {
	var out dataEnvelope[[]Card]
	if err := c.do(ctx, http.MethodGet, "/cards", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) AddNewCard(ctx context.Context, name, link string) (*Card, error) {
	body := map[string]string{"name": name, "link": link}
	var out dataEnvelope[Card]
	if err := c.do(ctx, http.MethodPost, "/cards", body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// RemoveCard deletes an owned card and returns it
func (c *Client) RemoveCard(ctx context.Context, id string) (*Card, error) {
	var out struct {
		Card Card `json:"card"`
	}
	if err := c.do(ctx, http.MethodDelete, "/cards/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Card, nil
}

// ChangeLikeCardStatus puts a like when like is true and removes it otherwise.
func (c *Client) ChangeLikeCardStatus(ctx context.Context, id string, like bool) (*Card, error) {
	method := http.MethodDelete
	if like {
		method = http.MethodPut
	}
	var out dataEnvelope[Card]
	if err := c.do(ctx, method, "/cards/"+url.PathEscape(id)+"/likes", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("photocards: encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("photocards: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var payload struct {
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			se.Message = payload.Message
			se.Details = payload.Details
		}
		return se
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("photocards: decode response: %w", err)
	}
	return nil
}
