package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"p2pconsole/internal/models"
)

// Handle разбирает одну команду оператора. Возвращает false на выходе из
// консоли. Ошибки не всплывают наружу -- оператор получает строку, консоль
// живёт дальше.
func (c *Controller) Handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		c.printHelp()
		return true
	}

	if c.State() != StateAuthenticated {
		switch cmd {
		case "login":
			c.handleLogin(ctx)
		default:
			c.println("Вход не выполнен. Доступны: login, help, quit")
		}
		return true
	}

	switch cmd {
	case "login":
		c.println("Вход уже выполнен.")
	case "logout":
		c.Logout(ctx)
	case "refresh":
		c.reportError(c.Refresh(ctx))
	case "run":
		c.reportError(c.TriggerRun(ctx))
	case "stop":
		c.reportError(c.StopBot(ctx))
	case "add":
		c.handleAddClient(ctx)
	case "rm":
		if len(fields) < 2 {
			c.println("Использование: rm <id>")
			return true
		}
		c.handleRemoveClient(ctx, fields[1])
	case "save":
		c.handleSaveConfig(ctx)
	default:
		if isPageName(cmd) {
			c.reportError(c.SelectPage(ctx, cmd))
		} else {
			// Неизвестное имя страницы -- на стартовую, как и в старом UI.
			c.printf("Неизвестная команда %q, открыта стартовая страница.\n", cmd)
			c.reportError(c.SelectPage(ctx, cmd))
		}
	}
	return true
}

func (c *Controller) handleLogin(ctx context.Context) {
	username, err := c.prompt.Line("Логин: ")
	if err != nil {
		return
	}
	password, err := c.prompt.Secret("Пароль: ")
	if err != nil {
		return
	}

	// Аналог required-полей формы: пустые значения не порождают запрос.
	if strings.TrimSpace(username) == "" || password == "" {
		c.println("Логин и пароль обязательны.")
		return
	}

	if err := c.Login(ctx, username, password); err != nil {
		c.printf("Вход не выполнен: %s\n", errorMessage(err))
	}
}

func (c *Controller) handleAddClient(ctx context.Context) {
	name, err := c.prompt.Line("Имя клиента: ")
	if err != nil {
		return
	}
	account, err := c.prompt.Line("Номер счёта: ")
	if err != nil {
		return
	}
	bank, err := c.prompt.Line("Код банка: ")
	if err != nil {
		return
	}
	amountRaw, err := c.prompt.Line("Сумма (NGN): ")
	if err != nil {
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(amountRaw))
	if err != nil {
		c.println("Сумма не распознана, клиент не добавлен.")
		return
	}

	c.reportError(c.AddClient(ctx, models.NewClient{
		Name:          name,
		AccountNumber: account,
		BankCode:      bank,
		Amount:        amount,
	}))
}

func (c *Controller) handleRemoveClient(ctx context.Context, id string) {
	ok, err := c.prompt.Confirm(fmt.Sprintf("Удалить клиента %s? [y/N]: ", id))
	if err != nil || !ok {
		c.println("Удаление отменено.")
		return
	}
	c.reportError(c.RemoveClient(ctx, id))
}

func (c *Controller) handleSaveConfig(ctx context.Context) {
	c.println("Пустое поле оставляет прежнее значение.")

	cfg := models.BotConfig{}
	var err error
	if cfg.BybitApiKey, err = c.prompt.Line("bybitApiKey: "); err != nil {
		return
	}
	if cfg.BybitApiSecret, err = c.prompt.Secret("bybitApiSecret: "); err != nil {
		return
	}
	if cfg.PaystackSecretKey, err = c.prompt.Secret("paystackSecretKey: "); err != nil {
		return
	}

	intervalRaw, err := c.prompt.Line("runIntervalMinutes: ")
	if err != nil {
		return
	}
	if strings.TrimSpace(intervalRaw) != "" {
		interval, convErr := strconv.Atoi(strings.TrimSpace(intervalRaw))
		if convErr != nil || interval <= 0 {
			c.println("Интервал не распознан, настройки не сохранены.")
			return
		}
		cfg.RunIntervalMinutes = interval
	}

	alertsRaw, err := c.prompt.Line("email alerts [y/n]: ")
	if err != nil {
		return
	}
	switch strings.ToLower(strings.TrimSpace(alertsRaw)) {
	case "y", "yes":
		enabled := true
		cfg.EmailAlertsEnabled = &enabled
	case "n", "no":
		enabled := false
		cfg.EmailAlertsEnabled = &enabled
	}

	if cfg.EmailUsername, err = c.prompt.Line("email_username: "); err != nil {
		return
	}
	if cfg.EmailPassword, err = c.prompt.Secret("email_password: "); err != nil {
		return
	}
	if cfg.AlertRecipientEmail, err = c.prompt.Line("alert_recipient_email: "); err != nil {
		return
	}

	c.reportError(c.SaveConfig(ctx, cfg))
}

func (c *Controller) reportError(err error) {
	if err != nil {
		c.printf("! %s\n", errorMessage(err))
	}
}

func (c *Controller) printHelp() {
	c.println("Страницы: dashboard, clients, orders, payments, logs, settings")
	c.println("Команды:  login, logout, refresh, run, stop, add, rm <id>, save, quit")
}
