package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Все сущности, кроме сессии, -- зеркала состояния бэкенда.
// Консоль ничего не досчитывает сама, только форматирует.

type BotStatus struct {
	Status      string `json:"status"`
	LastRunTime string `json:"lastRunTime"`
	NumOrders   int    `json:"numOrders"`
	NumPayments int    `json:"numPayments"`
	Running     bool   `json:"running"`
}

type Order struct {
	ID             string          `json:"id"`
	BybitOrderID   string          `json:"bybitOrderId"`
	ClientName     string          `json:"clientName"`
	AmountFiat     decimal.Decimal `json:"amountFiat"`
	AmountCrypto   decimal.Decimal `json:"amountCrypto"`
	SellerNickname string          `json:"sellerNickname"`
	PaystackTxID   string          `json:"paystackTxId"`
	Status         string          `json:"status"`
	Timestamp      time.Time       `json:"timestamp"`
}

type Payment struct {
	ID         string          `json:"id"`
	ClientName string          `json:"clientName"`
	Amount     decimal.Decimal `json:"amount"`
	Bank       string          `json:"bank"`
	Status     string          `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
}

type Client struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account"`
	BankCode      string          `json:"bank"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewClient -- форма добавления, id назначает бэкенд.
type NewClient struct {
	Name          string          `json:"name"`
	AccountNumber string          `json:"account"`
	BankCode      string          `json:"bank"`
	Amount        decimal.Decimal `json:"amount"`
}

// BotConfig: секреты write-only, на чтение бэкенд отдаёт маскированные значения.
// Пустые поля при сохранении означают "не менять", поэтому omitempty.
type BotConfig struct {
	BybitApiKey         string `json:"bybitApiKey,omitempty"`
	BybitApiSecret      string `json:"bybitApiSecret,omitempty"`
	PaystackSecretKey   string `json:"paystackSecretKey,omitempty"`
	RunIntervalMinutes  int    `json:"runIntervalMinutes,omitempty"`
	EmailAlertsEnabled  *bool  `json:"email_alerts_enabled,omitempty"`
	EmailUsername       string `json:"email_username,omitempty"`
	EmailPassword       string `json:"email_password,omitempty"`
	AlertRecipientEmail string `json:"alert_recipient_email,omitempty"`
	LastRunTime         string `json:"lastRunTime,omitempty"`
}
