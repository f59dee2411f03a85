package rest

import (
	"context"
	"net/http"
)

func (c *Client) TriggerRun(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/trigger-bot-run", nil, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) StopBot(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/stop-bot", nil, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
