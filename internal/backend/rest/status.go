package rest

import (
	"context"
	"net/http"

	"p2pconsole/internal/models"
)

func (c *Client) Status(ctx context.Context) (models.BotStatus, error) {
	var status models.BotStatus
	if err := c.doRequest(ctx, http.MethodGet, "/api/status", nil, true, &status); err != nil {
		return models.BotStatus{}, err
	}
	return status, nil
}

func (c *Client) Logs(ctx context.Context) ([]string, error) {
	var lines []string
	if err := c.doRequest(ctx, http.MethodGet, "/api/logs", nil, true, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
