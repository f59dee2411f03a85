package console

import (
	"testing"
	"time"

	"p2pconsole/internal/config"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		in   string
		want Page
	}{
		{"dashboard", PageDashboard},
		{"clients", PageClients},
		{"orders", PageOrders},
		{"payments", PagePayments},
		{"logs", PageLogs},
		{"settings", PageSettings},
		{" Orders ", PageOrders},
		{"bogus", LandingPage},
		{"", LandingPage},
	}
	for _, tc := range cases {
		if got := ParsePage(tc.in); got != tc.want {
			t.Errorf("ParsePage(%q) = %s, ожидалось %s", tc.in, got, tc.want)
		}
	}
}

func TestPollIntervals(t *testing.T) {
	cfg := &config.Config{
		Poll: config.PollConfig{StatusSec: 5, LogsSec: 2, OrdersSec: 10, PaymentsSec: 10},
	}

	cases := []struct {
		page Page
		want time.Duration
	}{
		{PageDashboard, 5 * time.Second},
		{PageLogs, 2 * time.Second},
		{PageOrders, 10 * time.Second},
		{PagePayments, 10 * time.Second},
		// Списки без автообновления: перечитываются по команде или после записи.
		{PageClients, 0},
		{PageSettings, 0},
	}
	for _, tc := range cases {
		if got := pollInterval(cfg, tc.page); got != tc.want {
			t.Errorf("pollInterval(%s) = %s, ожидалось %s", tc.page, got, tc.want)
		}
	}
}
