package console

import (
	"context"
	"time"
)

// pollLoop -- жизненный цикл одной видимой страницы: немедленный запрос,
// затем тики с фиксированным интервалом до отмены контекста. Запросы в
// полёте при отмене не прерываются, их результаты отсеет поколение.
func (c *Controller) pollLoop(ctx context.Context, page Page, gen uint64) {
	c.fetchInto(ctx, page, gen)

	interval := pollInterval(c.cfg, page)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.fetchInto(ctx, page, gen)
		}
	}
}

func (c *Controller) fetchInto(ctx context.Context, page Page, gen uint64) {
	v, err := c.fetchPage(ctx, page)
	select {
	case c.events <- fetchResult{page: page, gen: gen, view: v, err: err}:
	case <-c.done:
	}
}

// refetch перечитывает страницу после успешной записи, один запрос без тикера.
func (c *Controller) refetch(page Page) {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	go c.fetchInto(context.Background(), page, gen)
}

func (c *Controller) fetchPage(ctx context.Context, page Page) (view, error) {
	switch page {
	case PageDashboard:
		status, err := c.client.Status(ctx)
		if err != nil {
			return nil, err
		}
		return dashboardView{status: status}, nil
	case PageClients:
		clients, err := c.client.Clients(ctx)
		if err != nil {
			return nil, err
		}
		return clientsView{clients: clients}, nil
	case PageOrders:
		orders, err := c.client.Orders(ctx)
		if err != nil {
			return nil, err
		}
		return ordersView{orders: orders}, nil
	case PagePayments:
		payments, err := c.client.Payments(ctx)
		if err != nil {
			return nil, err
		}
		return paymentsView{payments: payments}, nil
	case PageLogs:
		lines, err := c.client.Logs(ctx)
		if err != nil {
			return nil, err
		}
		return logsView{lines: lines}, nil
	case PageSettings:
		cfg, err := c.client.Config(ctx)
		if err != nil {
			return nil, err
		}
		return settingsView{cfg: cfg}, nil
	}
	return emptyView{}, nil
}
