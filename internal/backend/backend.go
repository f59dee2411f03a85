package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"p2pconsole/internal/models"
)

var (
	// ErrNetwork -- транспортный сбой: DNS, соединение, таймаут.
	// HTTP-ответ с кодом ошибки сюда не попадает, это *APIError.
	ErrNetwork = errors.New("бэкенд недоступен")

	// ErrNoCredential -- запрос не отправлялся: в хранилище нет токена.
	ErrNoCredential = errors.New("нет токена сессии")
)

// APIError -- завершившийся запрос со статусом >= 400.
// Message берётся из поля message ответа, иначе подставляется текст статуса.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Бэкенд вернул ошибку %d: %s", e.Status, e.Message)
}

// Unauthorized: бэкенд отверг токен.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// CredentialSource -- читающая половина хранилища сессии.
type CredentialSource interface {
	Credential() (string, bool)
}

type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) (string, error)

	Status(ctx context.Context) (models.BotStatus, error)
	Logs(ctx context.Context) ([]string, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	Clients(ctx context.Context) ([]models.Client, error)

	AddClient(ctx context.Context, client models.NewClient) (string, error)
	RemoveClient(ctx context.Context, id string) (string, error)

	Config(ctx context.Context) (models.BotConfig, error)
	SaveConfig(ctx context.Context, cfg models.BotConfig) (string, error)

	TriggerRun(ctx context.Context) (string, error)
	StopBot(ctx context.Context) (string, error)
}
