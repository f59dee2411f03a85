package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"p2pconsole/internal/backend"
)

// doRequest -- единственная точка выхода в сеть. Подставляет bearer-токен
// (для auth-запросов он обязателен), присваивает request id и разводит ошибки
// на транспортные (ErrNetwork) и серверные (*APIError). Вызывающий код
// различает их через errors.Is/As, паник и "исключений" здесь нет.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("Не удалось подготовить тело запроса: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	token, hasToken := c.creds.Credential()
	if auth && !hasToken {
		return backend.ErrNoCredential
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("Не удалось создать запрос: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if hasToken {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	entry := c.log.WithRequestID(requestID).WithFields(map[string]interface{}{
		"method": method,
		"path":   path,
	})
	entry.Debug("Запрос к бэкенду.")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warn("Транспортная ошибка.")
		return fmt.Errorf("%w: %v", backend.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.WithError(err).Warn("Не удалось прочитать ответ.")
		return fmt.Errorf("%w: %v", backend.ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &backend.APIError{
			Status:  resp.StatusCode,
			Message: serverMessage(data, resp.StatusCode),
		}
		entry.WithFields(map[string]interface{}{
			"status":  resp.StatusCode,
			"message": apiErr.Message,
		}).Warn("Бэкенд вернул ошибку.")
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("Не удалось разобрать ответ: %w", err)
		}
	}

	entry.WithField("status", resp.StatusCode).Debug("Ответ получен.")
	return nil
}

// serverMessage достаёт поле message из тела ошибки,
// при любом мусоре в теле отдаёт текст HTTP-статуса.
func serverMessage(data []byte, status int) string {
	var msg messageResponse
	if err := json.Unmarshal(data, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Неизвестная ошибка бэкенда."
}
