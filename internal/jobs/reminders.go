package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"crm-service/internal/domain/order"
	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/usecase/queries"
)

// OrderReminders appends one reminder line per pending order placed within
// the lookback window. Orders without a resolvable customer email are
// skipped; one bad record never aborts the run.
type OrderReminders struct {
	orders     queries.OrderQueries
	log        joblog.Appender
	clock      clock.Clock
	logger     *slog.Logger
	windowDays int
}

func NewOrderReminders(
	orders queries.OrderQueries,
	log joblog.Appender,
	clk clock.Clock,
	logger *slog.Logger,
	windowDays int,
) *OrderReminders {
	return &OrderReminders{orders: orders, log: log, clock: clk, logger: logger, windowDays: windowDays}
}

func (j *OrderReminders) Name() string {
	return "reminders"
}

func (j *OrderReminders) Run(ctx context.Context) {
	now := j.clock.Now()
	from := now.AddDate(0, 0, -j.windowDays)
	status := order.StatusPending.String()

	// Inclusive window [now - windowDays, now].
	views, err := j.orders.List(ctx, queries.OrderFilters{
		Status: &status,
		From:   &from,
		To:     &now,
	})
	if err != nil {
		j.logger.Error("order reminders query failed", "error", err)
		j.append(fmt.Sprintf("%s - Error: %v", now.Format(reportTimeFormat), err))
		return
	}

	for _, v := range views {
		if v.CustomerEmail == "" {
			j.logger.Warn("skipping order without customer email", "order_id", v.ID)
			continue
		}
		j.append(fmt.Sprintf("%s - Reminder: Order %s for %s",
			now.Format(reportTimeFormat), v.ID, v.CustomerEmail))
	}
}

func (j *OrderReminders) append(line string) {
	if err := j.log.Append(line); err != nil {
		j.logger.Error("reminder log append failed", "error", err)
	}
}
