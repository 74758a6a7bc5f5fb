// Package jobs holds the scheduler-invoked periodic tasks. Every job follows
// the same contract: all failures are converted to log lines and the run
// returns normally, so one bad run never disrupts the schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"crm-service/internal/jobs/joblog"
	"crm-service/internal/pkg/clock"
	"crm-service/internal/usecase/queries"
)

const heartbeatTimeFormat = "02/01/2006-15:04:05"

// Heartbeat records an "alive" line every run and probes the data layer with
// a trivial query. A probe failure is reported on the same line; it never
// suppresses the heartbeat itself.
type Heartbeat struct {
	system queries.SystemQueries
	log    joblog.Appender
	clock  clock.Clock
	logger *slog.Logger
}

func NewHeartbeat(system queries.SystemQueries, log joblog.Appender, clk clock.Clock, logger *slog.Logger) *Heartbeat {
	return &Heartbeat{system: system, log: log, clock: clk, logger: logger}
}

func (j *Heartbeat) Name() string {
	return "heartbeat"
}

func (j *Heartbeat) Run(ctx context.Context) {
	line := j.clock.Now().Format(heartbeatTimeFormat) + " CRM is alive"

	if greeting, err := j.system.Ping(ctx); err != nil {
		line += fmt.Sprintf(" | CRM check failed: %v", err)
	} else {
		line += fmt.Sprintf(" | CRM says: %s", greeting)
	}

	if err := j.log.Append(line); err != nil {
		j.logger.Error("heartbeat log append failed", "error", err)
	}
}
