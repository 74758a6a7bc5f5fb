package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm-service/internal/pkg/errs"
)

// Job is a scheduler-invoked task. Run must handle its own failures; the
// runner never inspects an outcome.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

type Entry struct {
	Job      Job
	Interval time.Duration
}

// Runner fires each job on its own fixed interval. Jobs are independent:
// they may overlap each other and themselves, which is safe because jobs
// hold no shared in-process state.
type Runner struct {
	entries []Entry
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(logger *slog.Logger, entries []Entry) *Runner {
	return &Runner{entries: entries, logger: logger}
}

func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, e := range r.entries {
		r.wg.Add(1)
		go r.loop(ctx, e)
	}
}

// Trigger runs the named job once, synchronously, outside its schedule.
// Overlap with a ticker-driven run is safe for the same reason scheduled
// runs may overlap.
func (r *Runner) Trigger(ctx context.Context, name string) error {
	for _, e := range r.entries {
		if e.Job.Name() == name {
			e.Job.Run(ctx)
			return nil
		}
	}
	return errs.New("unknown job: " + name)
}

func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, e Entry) {
	defer r.wg.Done()

	r.logger.Info("job scheduled", "job", e.Job.Name(), "interval", e.Interval.String())

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("job runner stopped", "job", e.Job.Name())
			return
		case <-ticker.C:
			e.Job.Run(ctx)
		}
	}
}
