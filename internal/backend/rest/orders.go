package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"p2pconsole/internal/models"
)

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var list []struct {
		ID             string      `json:"id"`
		BybitOrderID   string      `json:"bybitOrderId"`
		ClientName     string      `json:"clientName"`
		AmountFiat     json.Number `json:"amountFiat"`
		AmountCrypto   json.Number `json:"amountCrypto"`
		SellerNickname string      `json:"sellerNickname"`
		PaystackTxID   string      `json:"paystackTxId"`
		Status         string      `json:"status"`
		Timestamp      string      `json:"timestamp"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "/api/orders", nil, true, &list); err != nil {
		return nil, err
	}

	var orders []models.Order
	for _, item := range list {
		orders = append(orders, models.Order{
			ID:             item.ID,
			BybitOrderID:   item.BybitOrderID,
			ClientName:     item.ClientName,
			AmountFiat:     c.parseAmount(item.AmountFiat),
			AmountCrypto:   c.parseAmount(item.AmountCrypto),
			SellerNickname: item.SellerNickname,
			PaystackTxID:   item.PaystackTxID,
			Status:         item.Status,
			Timestamp:      parseTimestamp(item.Timestamp),
		})
	}
	return orders, nil
}
