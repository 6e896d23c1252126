package sweeper_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/limbo/workout/internal/metrics"
	"github.com/limbo/workout/internal/sweeper"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type targetStub struct {
	calls    atomic.Int32
	marked   int64
	err      error
	deadline bool
}

func (ts *targetStub) SweepAll(ctx context.Context) (int64, error) {
	ts.calls.Add(1)
	_, ts.deadline = ctx.Deadline()
	return ts.marked, ts.err
}

func TestRunOnce(t *testing.T) {
	m := metrics.NewTestManager()

	t.Run("ok", func(t *testing.T) {
		target := &targetStub{marked: 4}
		s := sweeper.New(target, time.Second, m)
		n, err := s.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
		assert.True(t, target.deadline)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSweepRuns.WithLabelValues("ok")))
	})
	t.Run("error", func(t *testing.T) {
		target := &targetStub{err: errors.New("db down")}
		s := sweeper.New(target, time.Second, m)
		n, err := s.RunOnce(context.Background())
		assert.Error(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSweepRuns.WithLabelValues("error")))
	})
	t.Run("without metrics", func(t *testing.T) {
		s := sweeper.New(&targetStub{}, 0, nil)
		_, err := s.RunOnce(context.Background())
		assert.NoError(t, err)
	})
}

func TestSchedule(t *testing.T) {
	t.Run("bad spec", func(t *testing.T) {
		s := sweeper.New(&targetStub{}, time.Second, nil)
		assert.Error(t, s.Schedule("every now and then"))
	})
	t.Run("runs and stops cleanly", func(t *testing.T) {
		target := &targetStub{}
		s := sweeper.New(target, time.Second, nil)
		require.NoError(t, s.Schedule("@every 1s"))
		s.Start()
		assert.Eventually(t, func() bool { return target.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
		s.Stop()
	})
}
