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
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/shared"
	commandsmock "crm-service/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLowStockRestock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)

	t.Run("records the mutation message and each updated product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		restock := commandsmock.NewMockRestockCommands(ctrl)
		restock.EXPECT().Restock(gomock.Any()).Return(&commands.RestockResult{
			Success: true,
			Message: "Restocked 2 low-stock products",
			UpdatedProducts: []shared.RestockedProduct{
				{ID: uuid.New(), Name: "Mouse", Stock: 13},
				{ID: uuid.New(), Name: "Cable", Stock: 10},
			},
		}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewLowStockRestock(restock, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "2026-03-02 04:00:00 - Restocked 2 low-stock products", lines[0])
		assert.Equal(t, "Product: Mouse, New stock: 13", lines[1])
		assert.Equal(t, "Product: Cable, New stock: 10", lines[2])
	})

	t.Run("nothing to restock still records the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		restock := commandsmock.NewMockRestockCommands(ctrl)
		restock.EXPECT().Restock(gomock.Any()).Return(&commands.RestockResult{
			Success: true,
			Message: "Restocked 0 low-stock products",
		}, nil)

		log := joblog.NewMemoryLog()
		job := jobs.NewLowStockRestock(restock, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2026-03-02 04:00:00 - Restocked 0 low-stock products", lines[0])
	})

	t.Run("mutation failure becomes an error line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		restock := commandsmock.NewMockRestockCommands(ctrl)
		restock.EXPECT().Restock(gomock.Any()).Return(nil, errs.New("connection refused"))

		log := joblog.NewMemoryLog()
		job := jobs.NewLowStockRestock(restock, log, clock.NewMockClock(now), discardLogger())

		job.Run(ctx)

		lines := log.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2026-03-02 04:00:00 - Error: connection refused", lines[0])
	})
}
