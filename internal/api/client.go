package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthenticated is returned by every entity function when no bearer
// token is configured. It is raised before any network call is made.
var ErrUnauthenticated = errors.New("not authenticated — run \"gudangku login\" first")

// Client wraps HTTP calls to the inventory API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client from a base URL (e.g. http://localhost:3000)
// and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/") + "/api",
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// requireToken guards entity calls; absence of a token is an error of its
// own kind, distinct from a 401 coming back from the server.
func (c *Client) requireToken() error {
	if c.Token == "" {
		return ErrUnauthenticated
	}
	return nil
}

// APIError is returned when the server answers with a non-2xx status.
// Message is derived from the status band so callers (and the toast layer)
// get a stable, human-readable description.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d — %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	var msg string
	switch {
	case status == http.StatusUnauthorized:
		msg = "invalid or expired token"
	case status == http.StatusForbidden:
		msg = "forbidden"
	case status == http.StatusNotFound:
		msg = "not found"
	default:
		msg = fmt.Sprintf("HTTP %d", status)
	}

	// If the server sent a structured error, append it for context.
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		detail := errResp.Error
		if detail == "" {
			detail = errResp.Message
		}
		if detail != "" {
			msg += ": " + detail
		}
	}
	return &APIError{Status: status, Message: msg}
}

// --- low-level helpers ---

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	u := c.BaseURL + path
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request and returns the raw body. HTTP-level failures
// come back as *APIError; transport failures (the request never completed)
// are wrapped distinctly so callers can tell the two apart.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// Get sends a GET request and returns the raw JSON body.
func (c *Client) Get(path string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// GetJSON sends a GET and decodes the body into out.
func (c *Client) GetJSON(path string, params url.Values, out interface{}) error {
	data, err := c.Get(path, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Post sends a POST with a JSON body and returns the raw response body.
func (c *Client) Post(path string, body interface{}) ([]byte, error) {
	return c.send(http.MethodPost, path, body)
}

// Put sends a PUT with a JSON body and returns the raw response body.
func (c *Client) Put(path string, body interface{}) ([]byte, error) {
	return c.send(http.MethodPut, path, body)
}

// Delete sends a DELETE and returns the raw response body.
func (c *Client) Delete(path string) ([]byte, error) {
	req, err := c.newRequest(http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) send(method, path string, body interface{}) ([]byte, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(method, path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}
