package rest

import (
	"context"
	"net/http"

	"p2pconsole/internal/models"
)

// Config возвращает настройки бота с маскированными секретами --
// бэкенд никогда не отдаёт ключи целиком.
func (c *Client) Config(ctx context.Context) (models.BotConfig, error) {
	var cfg models.BotConfig
	if err := c.doRequest(ctx, http.MethodGet, "/api/config", nil, true, &cfg); err != nil {
		return models.BotConfig{}, err
	}
	return cfg, nil
}

// SaveConfig отправляет только заполненные поля: пустые значения
// бэкенд трактует как "оставить прежнее".
func (c *Client) SaveConfig(ctx context.Context, cfg models.BotConfig) (string, error) {
	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/config", cfg, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
