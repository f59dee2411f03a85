package rest

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Бэкенд сериализует datetime.isoformat(): иногда с зоной, иногда без,
// иногда "N/A". Нечитаемая метка отображается нулевым временем, а не ошибкой.
func parseTimestamp(value string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Суммы приходят JSON-числами; через json.Number они попадают в decimal
// без прохода через float64. Нечитаемая сумма отображается нулём,
// консоль бэкенду не судья.
func (c *Client) parseAmount(value json.Number) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(value.String())
	if err != nil {
		c.log.WithError(err).WithField("value", value.String()).Debug("Сумма в ответе не разобрана, подставлен ноль.")
		return decimal.Zero
	}
	return amount
}
