package sweeper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/limbo/workout/internal/metrics"
)

const DefaultSchedule = "@every 5m"

// GlobalSweeper marks overdue pending workouts of every user as missed.
type GlobalSweeper interface {
	SweepAll(ctx context.Context) (int64, error)
}

// Sweeper runs the global sweep on a cron schedule. The per-request sweep
// stays in place; this one only keeps stored statuses fresh for users who
// are not active.
type Sweeper struct {
	cron    *cron.Cron
	target  GlobalSweeper
	timeout time.Duration
	metrics *metrics.Manager
}

func New(target GlobalSweeper, timeout time.Duration, m *metrics.Manager) *Sweeper {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Sweeper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		target:  target,
		timeout: timeout,
		metrics: m,
	}
}

// Schedule registers the sweep job. spec is a standard cron expression or a
// descriptor such as "@every 5m".
func (s *Sweeper) Schedule(spec string) error {
	if spec == "" {
		spec = DefaultSchedule
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return errors.New("adding sweep job error: " + err.Error())
	}
	return nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) run() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		slog.Error("global sweep failed", slog.String("error", err.Error()))
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	n, err := s.target.SweepAll(ctx)
	if s.metrics != nil {
		s.metrics.HistSweepDuration.Observe(time.Since(start).Seconds())
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metrics.CounterSweepRuns.WithLabelValues(result).Inc()
	}
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("global sweep marked workouts missed", slog.Int64("count", n))
	}
	return n, nil
}
