package api

import (
	"encoding/json"
	"fmt"
)

// Login exchanges credentials for a bearer token. This is the one call
// that legitimately runs without a token.
func (c *Client) Login(username, password string) (*LoginResponse, error) {
	data, err := c.Post("/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	// Either {token, user} at the top level or wrapped in {data: {...}}.
	var resp LoginResponse
	if err := json.Unmarshal(data, &resp); err == nil && resp.Token != "" {
		return &resp, nil
	}
	var envelope struct {
		Data LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data.Token != "" {
		return &envelope.Data, nil
	}
	return nil, fmt.Errorf("login: unrecognized response shape")
}
