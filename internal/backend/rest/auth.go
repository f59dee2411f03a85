package rest

import (
	"context"
	"net/http"
)

// Login -- единственный вызов без bearer-токена.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var resp struct {
		Token string `json:"token"`
	}

	if err := c.doRequest(ctx, http.MethodPost, "/api/login", body, false, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/logout", nil, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
