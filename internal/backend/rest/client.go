package rest

import (
	"net/http"
	"time"

	"p2pconsole/internal/backend"
	"p2pconsole/internal/logger"
)

type Client struct {
	baseURL    string
	creds      backend.CredentialSource
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string, creds backend.CredentialSource, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
