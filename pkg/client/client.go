package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotAuthenticated is returned by calls that need a token when none is stored.
var ErrNotAuthenticated = errors.New("client has no stored token")

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int            `json:"-"`
	Message string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pet adoption api: %d %s: %s", e.Status, e.Code, e.Message)
}

// User is the identity returned by login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// Registration is the body of POST /responsible.
type Registration struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	CPF         string  `json:"cpf"`
	CNPJ        *string `json:"cnpj,omitempty"`
	Type        string  `json:"type"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
}

// Responsible is the public account view.
type Responsible struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PhoneNumber *string `json:"phone_number"`
}

// Pet is a listing as returned by the service.
type Pet struct {
	ID                 string    `json:"id,omitempty"`
	PetType            string    `json:"pet_type,omitempty"`
	Name               string    `json:"name,omitempty"`
	Age                *string   `json:"age,omitempty"`
	Gender             string    `json:"gender,omitempty"`
	Size               string    `json:"size,omitempty"`
	DescriptionHistory *string   `json:"description_history,omitempty"`
	Breed              *string   `json:"breed,omitempty"`
	Color              string    `json:"color,omitempty"`
	Status             string    `json:"status,omitempty"`
	ResponsibleID      string    `json:"responsible_id,omitempty"`
	VaccinationHistory *string   `json:"vaccination_history,omitempty"`
	PicturesURL        []string  `json:"pictures_url,omitempty"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
	UpdatedAt          time.Time `json:"updated_at,omitempty"`
}

// Client talks to the pet adoption HTTP API.
type Client struct {
	baseURL    string
	tokens     TokenStore
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.tokens = store }
}

// New builds a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     NewMemoryTokenStore(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, reg Registration) (*Responsible, error) {
	var out struct {
		Responsible Responsible `json:"responsible"`
	}
	if err := c.do(ctx, http.MethodPost, "/responsible", reg, &out, false); err != nil {
		return nil, err
	}
	return &out.Responsible, nil
}

// Login authenticates and stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out, false); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errors.New("login response carried no token")
	}
	c.tokens.Set(out.Token)
	return &out.User, nil
}

// Logout forgets the stored token. The server keeps no session, so the call
// only clears the cookie for browser clients.
func (c *Client) Logout(ctx context.Context) error {
	c.tokens.Clear()
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, false)
}

// DeleteAccount removes the logged-in account and its listings, then forgets the token.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/responsible", nil, nil, true); err != nil {
		return err
	}
	c.tokens.Clear()
	return nil
}

// ListPets returns all listings, or those of one responsible when responsibleID is set.
func (c *Client) ListPets(ctx context.Context, responsibleID string) ([]Pet, error) {
	path := "/pet"
	if responsibleID != "" {
		path += "?" + url.Values{"responsible_id": {responsibleID}}.Encode()
	}
	var out []Pet
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPet fetches a single listing.
func (c *Client) GetPet(ctx context.Context, id string) (*Pet, error) {
	var out Pet
	if err := c.do(ctx, http.MethodGet, "/pet/"+url.PathEscape(id), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePet creates a listing owned by the logged-in account.
func (c *Client) CreatePet(ctx context.Context, pet Pet) (*Pet, error) {
	var out Pet
	if err := c.do(ctx, http.MethodPost, "/pet", pet, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePet sends a partial update; only non-empty fields of changes are sent.
func (c *Client) UpdatePet(ctx context.Context, id string, changes Pet) (*Pet, error) {
	var out Pet
	if err := c.do(ctx, http.MethodPut, "/pet/"+url.PathEscape(id), changes, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePet removes a listing owned by the logged-in account.
func (c *Client) DeletePet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pet/"+url.PathEscape(id), nil, nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, authenticated bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if authenticated {
		return ErrNotAuthenticated
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
