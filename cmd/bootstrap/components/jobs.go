package components

import (
	"context"
	"log/slog"

	"crm-service/internal/jobs"
	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/pkg/config"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"go.uber.org/fx"
)

// Log file names match the original cron deployment so existing log
// consumers keep working.
const (
	heartbeatLogFile = "crm_heartbeat_log.txt"
	reportLogFile    = "crm_report_log.txt"
	remindersLogFile = "order_reminders_log.txt"
	restockLogFile   = "low_stock_updates_log.txt"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewJobRunner,
	),
	fx.Invoke(startJobRunner),
)

func NewJobRunner(
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
	system queries.SystemQueries,
	customers queries.CustomerQueries,
	orders queries.OrderQueries,
	restock commands.RestockCommands,
) *jobs.Runner {
	dir := cfg.Jobs.LogDir

	heartbeat := jobs.NewHeartbeat(system, joblog.NewFileLog(dir, heartbeatLogFile), clk, logger)
	report := jobs.NewWeeklyReport(customers, orders, joblog.NewFileLog(dir, reportLogFile), clk, logger)
	reminders := jobs.NewOrderReminders(orders, joblog.NewFileLog(dir, remindersLogFile), clk, logger, cfg.Jobs.ReminderWindowDays)
	lowStock := jobs.NewLowStockRestock(restock, joblog.NewFileLog(dir, restockLogFile), clk, logger)

	return jobs.NewRunner(logger, []jobs.Entry{
		{Job: heartbeat, Interval: cfg.Jobs.HeartbeatInterval},
		{Job: report, Interval: cfg.Jobs.ReportInterval},
		{Job: reminders, Interval: cfg.Jobs.ReminderInterval},
		{Job: lowStock, Interval: cfg.Jobs.RestockInterval},
	})
}

func startJobRunner(lc fx.Lifecycle, runner *jobs.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			runner.Stop()
			return nil
		},
	})
}
