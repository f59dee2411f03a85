package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"p2pconsole/internal/models"
)

func (c *Client) Payments(ctx context.Context) ([]models.Payment, error) {
	var list []struct {
		ID         string      `json:"id"`
		ClientName string      `json:"clientName"`
		Amount     json.Number `json:"amount"`
		Bank       string      `json:"bank"`
		Status     string      `json:"status"`
		Timestamp  string      `json:"timestamp"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "/api/payments", nil, true, &list); err != nil {
		return nil, err
	}

	var payments []models.Payment
	for _, item := range list {
		payments = append(payments, models.Payment{
			ID:         item.ID,
			ClientName: item.ClientName,
			Amount:     c.parseAmount(item.Amount),
			Bank:       item.Bank,
			Status:     item.Status,
			Timestamp:  parseTimestamp(item.Timestamp),
		})
	}
	return payments, nil
}
