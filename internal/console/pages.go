package console

import (
	"strings"
	"time"

	"p2pconsole/internal/config"
)

type Page string

const (
	PageDashboard Page = "dashboard"
	PageClients   Page = "clients"
	PageOrders    Page = "orders"
	PagePayments  Page = "payments"
	PageLogs      Page = "logs"
	PageSettings  Page = "settings"
)

// LandingPage открывается сразу после входа.
const LandingPage = PageDashboard

var allPages = []Page{
	PageDashboard,
	PageClients,
	PageOrders,
	PagePayments,
	PageLogs,
	PageSettings,
}

// ParsePage сводит произвольное имя к закрытому набору страниц.
// Неизвестное имя -- не ошибка, а переход на стартовую страницу.
func ParsePage(name string) Page {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, page := range allPages {
		if string(page) == needle {
			return page
		}
	}
	return LandingPage
}

func isPageName(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, page := range allPages {
		if string(page) == needle {
			return true
		}
	}
	return false
}

// pollInterval: 0 -- страница без автообновления (clients, settings).
func pollInterval(cfg *config.Config, page Page) time.Duration {
	switch page {
	case PageDashboard:
		return time.Duration(cfg.Poll.StatusSec) * time.Second
	case PageLogs:
		return time.Duration(cfg.Poll.LogsSec) * time.Second
	case PageOrders:
		return time.Duration(cfg.Poll.OrdersSec) * time.Second
	case PagePayments:
		return time.Duration(cfg.Poll.PaymentsSec) * time.Second
	default:
		return 0
	}
}
