package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/clock"
	"github.com/limbo/workout/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEnv struct {
	scheduleEnv *scheduleEnv
	logsRepo    *logsFake
	logs        *service.LogService
	reports     *service.ReportService
}

func newLogEnv() *logEnv {
	env := newScheduleEnv()
	logsRepo := &logsFake{}
	return &logEnv{
		scheduleEnv: env,
		logsRepo:    logsRepo,
		logs:        service.NewLogService(passTx{}, logsRepo, env.schedules, env.clock),
		reports:     service.NewReportService(logsRepo),
	}
}

func TestCreateLog(t *testing.T) {
	env := newLogEnv()
	ctx := context.Background()
	uid := uuid.New()
	plan := env.scheduleEnv.plan(t, uid)
	sw := env.scheduleEnv.schedule(t, uid, plan.ID, entity.DateOf(noon), entity.TimeOfDay{Hour: 7})

	t.Run("completed at defaults to now", func(t *testing.T) {
		wl, err := env.logs.CreateLog(ctx, uid, &service.CreateLogRequest{
			ScheduledWorkoutID: sw.ID,
			TotalTime:          45,
			Notes:              "felt strong",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, wl.ID)
		assert.Equal(t, uid, wl.UserID)
		require.NotNil(t, wl.ScheduledWorkoutID)
		assert.Equal(t, sw.ID, *wl.ScheduledWorkoutID)
		assert.True(t, noon.Equal(wl.CompletedAt))
		assert.Equal(t, 45, wl.TotalTime)
	})
	t.Run("explicit completed at", func(t *testing.T) {
		at := noon.Add(-3 * time.Hour)
		wl, err := env.logs.CreateLog(ctx, uid, &service.CreateLogRequest{
			ScheduledWorkoutID: sw.ID,
			CompletedAt:        &at,
			TotalTime:          30,
		})
		require.NoError(t, err)
		assert.True(t, at.Equal(wl.CompletedAt))
	})
	t.Run("does not change schedule status", func(t *testing.T) {
		assert.Equal(t, entity.StatusPending, env.scheduleEnv.schedules.stored(sw.ID).Status)
	})

	testCases := []struct {
		Desc  string
		User  uuid.UUID
		Req   *service.CreateLogRequest
		Error error
	}{
		{
			Desc:  "unknown scheduled workout",
			User:  uid,
			Req:   &service.CreateLogRequest{ScheduledWorkoutID: uuid.New(), TotalTime: 10},
			Error: errorvalues.ErrScheduledWorkoutNotFound,
		},
		{
			Desc:  "scheduled workout of another user",
			User:  uuid.New(),
			Req:   &service.CreateLogRequest{ScheduledWorkoutID: sw.ID, TotalTime: 10},
			Error: errorvalues.ErrScheduledWorkoutNotFound,
		},
		{
			Desc:  "negative total time",
			User:  uid,
			Req:   &service.CreateLogRequest{ScheduledWorkoutID: sw.ID, TotalTime: -1},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "missing scheduled workout id",
			User:  uid,
			Req:   &service.CreateLogRequest{TotalTime: 10},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "notes too long",
			User:  uid,
			Req:   &service.CreateLogRequest{ScheduledWorkoutID: sw.ID, Notes: strings.Repeat("a", 4001)},
			Error: errorvalues.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			before := len(env.logsRepo.rows)
			_, err := env.logs.CreateLog(ctx, tc.User, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
			assert.Len(t, env.logsRepo.rows, before)
		})
	}
}

func TestListAndGetLogs(t *testing.T) {
	env := newLogEnv()
	ctx := context.Background()
	uid := uuid.New()

	_, err := env.logs.ListLogs(ctx, uid, service.PaginationOpts{Limit: 10})
	assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)

	plan := env.scheduleEnv.plan(t, uid)
	sw := env.scheduleEnv.schedule(t, uid, plan.ID, entity.DateOf(noon), entity.TimeOfDay{Hour: 7})
	ids := make([]uuid.UUID, 0, 3)
	for i := range 3 {
		at := noon.Add(time.Duration(i) * time.Hour)
		wl, err := env.logs.CreateLog(ctx, uid, &service.CreateLogRequest{ScheduledWorkoutID: sw.ID, CompletedAt: &at, TotalTime: 10})
		require.NoError(t, err)
		ids = append(ids, wl.ID)
	}

	logs, err := env.logs.ListLogs(ctx, uid, service.PaginationOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ids[2], logs[0].ID)
	assert.Equal(t, ids[1], logs[1].ID)

	logs, err = env.logs.ListLogs(ctx, uid, service.PaginationOpts{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ids[0], logs[0].ID)

	wl, err := env.logs.GetLog(ctx, ids[0], uid)
	require.NoError(t, err)
	assert.Equal(t, ids[0], wl.ID)

	_, err = env.logs.GetLog(ctx, ids[0], uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
}

func TestGenerateProgressReport(t *testing.T) {
	env := newLogEnv()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("no logs", func(t *testing.T) {
		report, err := env.reports.GenerateProgressReport(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, entity.ProgressReport{}, *report)
	})

	plan := env.scheduleEnv.plan(t, uid)
	sw := env.scheduleEnv.schedule(t, uid, plan.ID, entity.DateOf(noon), entity.TimeOfDay{Hour: 7})
	for _, minutes := range []int{45, 30, 0} {
		_, err := env.logs.CreateLog(ctx, uid, &service.CreateLogRequest{ScheduledWorkoutID: sw.ID, TotalTime: minutes})
		require.NoError(t, err)
	}

	t.Run("totals", func(t *testing.T) {
		report, err := env.reports.GenerateProgressReport(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.TotalWorkouts)
		assert.Equal(t, int64(75), report.TotalTimeSpent)
	})
	t.Run("failed create leaves report untouched", func(t *testing.T) {
		_, err := env.logs.CreateLog(ctx, uid, &service.CreateLogRequest{ScheduledWorkoutID: uuid.New(), TotalTime: 60})
		require.ErrorIs(t, err, errorvalues.ErrScheduledWorkoutNotFound)
		report, err := env.reports.GenerateProgressReport(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.TotalWorkouts)
		assert.Equal(t, int64(75), report.TotalTimeSpent)
	})
	t.Run("other users are not counted", func(t *testing.T) {
		report, err := env.reports.GenerateProgressReport(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, report.TotalWorkouts)
	})
	t.Run("logs survive schedule deletion", func(t *testing.T) {
		require.NoError(t, env.scheduleEnv.s.DeleteSchedule(ctx, sw.ID, uid))
		report, err := env.reports.GenerateProgressReport(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.TotalWorkouts)
	})
}

func TestLogServiceDefaultClock(t *testing.T) {
	logsRepo := &logsFake{}
	schedules := newSchedulesFake()
	s := service.NewLogService(passTx{}, logsRepo, schedules, nil)
	uid := uuid.New()
	sw := &entity.ScheduledWorkout{UserID: uid, PlanID: uuid.New(), Status: entity.StatusPending}
	require.NoError(t, schedules.Create(context.Background(), sw))

	before := clock.New().Now()
	wl, err := s.CreateLog(context.Background(), uid, &service.CreateLogRequest{ScheduledWorkoutID: sw.ID})
	require.NoError(t, err)
	assert.False(t, wl.CompletedAt.Before(before))
}
