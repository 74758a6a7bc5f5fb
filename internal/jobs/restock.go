package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/usecase/commands"
)

// LowStockRestock triggers the restock mutation and records its outcome: the
// mutation message, then one line per updated product. Failures become an
// error line; the job never raises to its caller.
type LowStockRestock struct {
	restock commands.RestockCommands
	log     joblog.Appender
	clock   clock.Clock
	logger  *slog.Logger
}

func NewLowStockRestock(restock commands.RestockCommands, log joblog.Appender, clk clock.Clock, logger *slog.Logger) *LowStockRestock {
	return &LowStockRestock{restock: restock, log: log, clock: clk, logger: logger}
}

func (j *LowStockRestock) Name() string {
	return "restock"
}

func (j *LowStockRestock) Run(ctx context.Context) {
	now := j.clock.Now()

	result, err := j.restock.Restock(ctx)
	if err != nil {
		j.logger.Error("restock mutation failed", "error", err)
		j.append(fmt.Sprintf("%s - Error: %v", now.Format(reportTimeFormat), err))
		return
	}

	j.append(fmt.Sprintf("%s - %s", now.Format(reportTimeFormat), result.Message))
	for _, p := range result.UpdatedProducts {
		j.append(fmt.Sprintf("Product: %s, New stock: %d", p.Name, p.Stock))
	}
}

func (j *LowStockRestock) append(line string) {
	if err := j.log.Append(line); err != nil {
		j.logger.Error("restock log append failed", "error", err)
	}
}
