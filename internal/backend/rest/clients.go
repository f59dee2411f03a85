package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"p2pconsole/internal/models"
)

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	var list []struct {
		ID            string      `json:"id"`
		Name          string      `json:"name"`
		AccountNumber string      `json:"account"`
		BankCode      string      `json:"bank"`
		Amount        json.Number `json:"amount"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "/api/clients", nil, true, &list); err != nil {
		return nil, err
	}

	var clients []models.Client
	for _, item := range list {
		clients = append(clients, models.Client{
			ID:            item.ID,
			Name:          item.Name,
			AccountNumber: item.AccountNumber,
			BankCode:      item.BankCode,
			Amount:        c.parseAmount(item.Amount),
		})
	}
	return clients, nil
}

func (c *Client) AddClient(ctx context.Context, client models.NewClient) (string, error) {
	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/add-client", client, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) RemoveClient(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	path := "/api/remove-client/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
