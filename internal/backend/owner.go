package backend

import (
	"context"
	"fmt"
	"net/http"
)

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges owner credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/owner/login", creds, &out); err != nil {
		return "", fmt.Errorf("owner login: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("owner login: empty access token")
	}
	return out.AccessToken, nil
}

// VerifyOwner asks the backend whether the client's token is still accepted.
func (c *Client) VerifyOwner(ctx context.Context) (string, error) {
	var out struct {
		Username      string `json:"username"`
		Authenticated bool   `json:"authenticated"`
	}
	if err := c.getJSON(ctx, "/owner/verify", nil, &out); err != nil {
		return "", fmt.Errorf("verify owner: %w", err)
	}
	if !out.Authenticated {
		return "", fmt.Errorf("verify owner: %w", &APIError{Status: http.StatusUnauthorized, Detail: "not authenticated"})
	}
	return out.Username, nil
}
