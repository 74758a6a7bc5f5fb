//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"crm-service/internal/jobs"
	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/queries"
	queriesmock "crm-service/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWeeklyReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	t.Run("summarizes customers, orders and revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := queriesmock.NewMockCustomerQueries(ctrl)
		orders := queriesmock.NewMockOrderQueries(ctrl)
		customers.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
		// 100 + 50 plus one order whose amount the store already coalesced
		// to zero.
		orders.EXPECT().RevenueSummary(gomock.Any()).Return(&queries.RevenueSummary{
			TotalOrders:  3,
			TotalRevenue: decimal.RequireFromString("150"),
		}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewWeeklyReport(customers, orders, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2026-03-02 06:00:00 - Report: 2 customers, 3 orders, 150 revenue", lines[0])
	})

	t.Run("empty book reports zeroes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := queriesmock.NewMockCustomerQueries(ctrl)
		orders := queriesmock.NewMockOrderQueries(ctrl)
		customers.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
		orders.EXPECT().RevenueSummary(gomock.Any()).Return(&queries.RevenueSummary{
			TotalOrders:  0,
			TotalRevenue: decimal.Zero,
		}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewWeeklyReport(customers, orders, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2026-03-02 06:00:00 - Report: 0 customers, 0 orders, 0 revenue", lines[0])
	})

	t.Run("query failure becomes an error line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := queriesmock.NewMockCustomerQueries(ctrl)
		orders := queriesmock.NewMockOrderQueries(ctrl)
		customers.EXPECT().Count(gomock.Any()).Return(int64(0), errs.New("connection refused"))

		log := joblog.NewMemoryLog()
		job := jobs.NewWeeklyReport(customers, orders, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Error occurred: connection refused")
	})
}
