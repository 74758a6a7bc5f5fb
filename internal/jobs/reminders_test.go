//go:build unit

package jobs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"crm-service/internal/jobs"
	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/pkg/errs"
	"crm-service/internal/usecase/queries"
	"crm-service/tests/common/builder"
	queriesmock "crm-service/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	const windowDays = 7

	t.Run("queries pending orders in the inclusive lookback window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderQueries(ctrl)

		var captured queries.OrderFilters
		orders.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filters queries.OrderFilters) ([]*queries.OrderView, error) {
				captured = filters
				return nil, nil
			})

		log := joblog.NewMemoryLog()
		job := jobs.NewOrderReminders(orders, log, clock.NewMockClock(now), discardLogger(), windowDays)

		job.Run(ctx)

		require.NotNil(t, captured.Status)
		assert.Equal(t, "PENDING", *captured.Status)
		require.NotNil(t, captured.From)
		require.NotNil(t, captured.To)
		assert.Equal(t, now.AddDate(0, 0, -windowDays), *captured.From)
		assert.Equal(t, now, *captured.To)
		assert.Empty(t, log.Lines())
	})

	t.Run("appends one reminder line per order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderQueries(ctrl)

		recent := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.OrderDate = now.AddDate(0, 0, -3)
		}).BuildView()
		other := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.CustomerEmail = "bob@example.com"
			b.OrderDate = now.AddDate(0, 0, -1)
		}).BuildView()
		orders.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.OrderView{&recent, &other}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewOrderReminders(orders, log, clock.NewMockClock(now), discardLogger(), windowDays)

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, fmt.Sprintf("2026-03-02 08:00:00 - Reminder: Order %s for alice@example.com", recent.ID), lines[0])
		assert.Equal(t, fmt.Sprintf("2026-03-02 08:00:00 - Reminder: Order %s for bob@example.com", other.ID), lines[1])
	})

	t.Run("skips orders without a customer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderQueries(ctrl)

		broken := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.CustomerEmail = ""
		}).BuildView()
		sound := builder.NewOrderBuilder().BuildView()
		orders.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.OrderView{&broken, &sound}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewOrderReminders(orders, log, clock.NewMockClock(now), discardLogger(), windowDays)

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], sound.ID.String())
	})

	t.Run("query failure becomes an error line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderQueries(ctrl)
		orders.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused"))

		log := joblog.NewMemoryLog()
		job := jobs.NewOrderReminders(orders, log, clock.NewMockClock(now), discardLogger(), windowDays)

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2026-03-02 08:00:00 - Error: connection refused", lines[0])
	})
}
