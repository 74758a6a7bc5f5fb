package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/usecase/queries"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// WeeklyReport summarizes the entity graph: customer count, order count and
// total revenue. Each run appends exactly one line; a query failure appends
// an error line instead of propagating.
type WeeklyReport struct {
	customers queries.CustomerQueries
	orders    queries.OrderQueries
	log       joblog.Appender
	clock     clock.Clock
	logger    *slog.Logger
}

func NewWeeklyReport(
	customers queries.CustomerQueries,
	orders queries.OrderQueries,
	log joblog.Appender,
	clk clock.Clock,
	logger *slog.Logger,
) *WeeklyReport {
	return &WeeklyReport{customers: customers, orders: orders, log: log, clock: clk, logger: logger}
}

func (j *WeeklyReport) Name() string {
	return "report"
}

func (j *WeeklyReport) Run(ctx context.Context) {
	line, err := j.buildReportLine(ctx)
	if err != nil {
		j.logger.Error("report generation failed", "error", err)
		line = fmt.Sprintf("Error occurred: %v", err)
	}

	if appendErr := j.log.Append(line); appendErr != nil {
		j.logger.Error("report log append failed", "error", appendErr)
	}
}

func (j *WeeklyReport) buildReportLine(ctx context.Context) (string, error) {
	totalCustomers, err := j.customers.Count(ctx)
	if err != nil {
		return "", err
	}

	summary, err := j.orders.RevenueSummary(ctx)
	if err != nil {
		return "", err
	}

	timestamp := j.clock.Now().Format(reportTimeFormat)
	return fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		timestamp, totalCustomers, summary.TotalOrders, summary.TotalRevenue.String()), nil
}
