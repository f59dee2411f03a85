package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"p2pconsole/internal/models"
)

type view interface {
	render(w io.Writer)
}

type emptyView struct{}

func (emptyView) render(io.Writer) {}

type dashboardView struct {
	status models.BotStatus
}

func (v dashboardView) render(w io.Writer) {
	lastRun := v.status.LastRunTime
	if lastRun == "" {
		lastRun = "N/A"
	}
	fmt.Fprintf(w, "status:       %s\n", v.status.Status)
	fmt.Fprintf(w, "last run:     %s\n", lastRun)
	fmt.Fprintf(w, "orders:       %d\n", v.status.NumOrders)
	fmt.Fprintf(w, "payments:     %d\n", v.status.NumPayments)
}

type clientsView struct {
	clients []models.Client
}

func (v clientsView) render(w io.Writer) {
	if len(v.clients) == 0 {
		fmt.Fprintln(w, "Клиентов нет.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tACCOUNT\tBANK\tAMOUNT")
	for _, client := range v.clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			client.ID, client.Name, client.AccountNumber, client.BankCode, formatMoney(client.Amount))
	}
	tw.Flush()
}

type ordersView struct {
	orders []models.Order
}

func (v ordersView) render(w io.Writer) {
	if len(v.orders) == 0 {
		fmt.Fprintln(w, "Ордеров нет.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENT\tFIAT\tCRYPTO\tSELLER\tSTATUS\tTIME")
	for _, order := range v.orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			order.ID,
			order.ClientName,
			formatMoney(order.AmountFiat),
			orDash(formatOptionalAmount(order.AmountCrypto)),
			orDash(order.SellerNickname),
			order.Status,
			formatTime(order.Timestamp))
	}
	tw.Flush()
}

type paymentsView struct {
	payments []models.Payment
}

func (v paymentsView) render(w io.Writer) {
	if len(v.payments) == 0 {
		fmt.Fprintln(w, "Платежей нет.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENT\tAMOUNT\tBANK\tSTATUS\tTIME")
	for _, payment := range v.payments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			payment.ID,
			payment.ClientName,
			formatMoney(payment.Amount),
			orDash(payment.Bank),
			payment.Status,
			formatTime(payment.Timestamp))
	}
	tw.Flush()
}

type logsView struct {
	lines []string
}

func (v logsView) render(w io.Writer) {
	if len(v.lines) == 0 {
		fmt.Fprintln(w, "Лог пуст.")
		return
	}
	for _, line := range v.lines {
		fmt.Fprintln(w, line)
	}
}

type settingsView struct {
	cfg models.BotConfig
}

func (v settingsView) render(w io.Writer) {
	enabled := "false"
	if v.cfg.EmailAlertsEnabled != nil && *v.cfg.EmailAlertsEnabled {
		enabled = "true"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "bybitApiKey\t"+orDash(v.cfg.BybitApiKey))
	fmt.Fprintln(tw, "bybitApiSecret\t"+orDash(v.cfg.BybitApiSecret))
	fmt.Fprintln(tw, "paystackSecretKey\t"+orDash(v.cfg.PaystackSecretKey))
	fmt.Fprintf(tw, "runIntervalMinutes\t%d\n", v.cfg.RunIntervalMinutes)
	fmt.Fprintln(tw, "email_alerts_enabled\t"+enabled)
	fmt.Fprintln(tw, "email_username\t"+orDash(v.cfg.EmailUsername))
	fmt.Fprintln(tw, "alert_recipient_email\t"+orDash(v.cfg.AlertRecipientEmail))
	tw.Flush()
	fmt.Fprintln(w, "Секреты показаны маскированными. Команда save меняет только заполненные поля.")
}

// formatMoney: единственное "вычисление" на стороне консоли --
// локальный денежный формат найры.
func formatMoney(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	return sign + "₦" + strings.Join(groups, ",") + "." + frac
}

func formatOptionalAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return amount.String()
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return "N/A"
	}
	return ts.Format("2006-01-02 15:04:05")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
