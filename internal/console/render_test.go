package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"p2pconsole/internal/models"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1000", "₦1,000.00"},
		{"0", "₦0.00"},
		{"999.9", "₦999.90"},
		{"1234567.5", "₦1,234,567.50"},
		{"-25000", "-₦25,000.00"},
	}
	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("NewFromString(%q): %v", tc.in, err)
		}
		if got := formatMoney(amount); got != tc.want {
			t.Errorf("formatMoney(%s) = %q, ожидалось %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "N/A" {
		t.Errorf("нулевое время: получено %q", got)
	}
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := formatTime(ts); got != "2024-01-01 00:00:00" {
		t.Errorf("получено %q", got)
	}
}

func TestOrdersViewRendering(t *testing.T) {
	v := ordersView{orders: []models.Order{{
		ID:         "1",
		ClientName: "A",
		AmountFiat: decimal.NewFromInt(1000),
		Status:     "done",
		Timestamp:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}

	out := &bytes.Buffer{}
	v.render(out)

	got := out.String()
	for _, want := range []string{"CLIENT", "₦1,000.00", "done", "2024-01-01 00:00:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("в таблице нет %q:\n%s", want, got)
		}
	}
}

func TestOrdersViewEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	ordersView{}.render(out)
	if !strings.Contains(out.String(), "Ордеров нет.") {
		t.Errorf("пустой список без заглушки: %q", out.String())
	}
}

// Секреты на странице настроек видны только маскированными.
func TestSettingsViewShowsMaskedSecrets(t *testing.T) {
	v := settingsView{cfg: models.BotConfig{
		BybitApiKey:        "abcd****",
		RunIntervalMinutes: 5,
	}}

	out := &bytes.Buffer{}
	v.render(out)

	got := out.String()
	if !strings.Contains(got, "abcd****") {
		t.Errorf("маскированный ключ не показан:\n%s", got)
	}
	if !strings.Contains(got, "маскированными") {
		t.Errorf("нет подсказки про маскирование:\n%s", got)
	}
}
