package console

import (
	"context"
	"fmt"
	"strings"

	"p2pconsole/internal/models"
)

// Операции записи устроены одинаково: запрос, сообщение сервера при успехе,
// один повторный запрос чтения для сверки. При ошибке прежнее состояние
// страницы не трогается.

// AddClient проверяет обязательные поля до любого похода в сеть.
func (c *Controller) AddClient(ctx context.Context, client models.NewClient) error {
	if err := validateNewClient(client); err != nil {
		return err
	}

	msg, err := c.client.AddClient(ctx, client)
	if err != nil {
		return err
	}

	c.printf("%s\n", orDefault(msg, "Клиент добавлен."))
	c.refetch(PageClients)
	return nil
}

// RemoveClient вызывается только после явного подтверждения в командном слое.
func (c *Controller) RemoveClient(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("Не указан id клиента.")
	}

	msg, err := c.client.RemoveClient(ctx, id)
	if err != nil {
		return err
	}

	c.printf("%s\n", orDefault(msg, "Клиент удалён."))
	c.refetch(PageClients)
	return nil
}

func (c *Controller) SaveConfig(ctx context.Context, cfg models.BotConfig) error {
	msg, err := c.client.SaveConfig(ctx, cfg)
	if err != nil {
		return err
	}

	c.printf("%s\n", orDefault(msg, "Настройки сохранены."))
	c.refetch(PageSettings)
	return nil
}

func (c *Controller) TriggerRun(ctx context.Context) error {
	msg, err := c.client.TriggerRun(ctx)
	if err != nil {
		return err
	}

	c.printf("%s\n", orDefault(msg, "Запуск бота инициирован."))
	c.refetch(PageDashboard)
	return nil
}

func (c *Controller) StopBot(ctx context.Context) error {
	msg, err := c.client.StopBot(ctx)
	if err != nil {
		return err
	}

	c.printf("%s\n", orDefault(msg, "Сигнал остановки отправлен."))
	c.refetch(PageDashboard)
	return nil
}

func (c *Controller) Refresh(ctx context.Context) error {
	if c.State() != StateAuthenticated {
		return fmt.Errorf("Сначала выполните вход.")
	}
	c.showPage(c.CurrentPage())
	return nil
}

func validateNewClient(client models.NewClient) error {
	switch {
	case strings.TrimSpace(client.Name) == "":
		return fmt.Errorf("Поле name обязательно.")
	case strings.TrimSpace(client.AccountNumber) == "":
		return fmt.Errorf("Поле account обязательно.")
	case strings.TrimSpace(client.BankCode) == "":
		return fmt.Errorf("Поле bank обязательно.")
	case client.Amount.IsZero() || client.Amount.IsNegative():
		return fmt.Errorf("Поле amount должно быть положительным.")
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
