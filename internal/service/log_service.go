package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/pkg/clock"
	"github.com/limbo/workout/pkg/entity"
)

// LogService records completed workouts. A log may reference only a
// scheduled workout owned by the same user.
type LogService struct {
	tx        repository.TransactorI
	logs      repository.LogsRepositoryI
	schedules repository.SchedulesRepositoryI
	clock     clock.Clock
}

func NewLogService(tx repository.TransactorI, logs repository.LogsRepositoryI, schedules repository.SchedulesRepositoryI, c clock.Clock) *LogService {
	if tx == nil || logs == nil || schedules == nil {
		log.Fatal("on log service provided nil dependencies")
	}
	if c == nil {
		c = clock.New()
	}
	return &LogService{
		tx:        tx,
		logs:      logs,
		schedules: schedules,
		clock:     c,
	}
}

func (ls *LogService) CreateLog(ctx context.Context, userID uuid.UUID, req *CreateLogRequest) (*entity.WorkoutLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	completedAt := ls.clock.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}
	swID := req.ScheduledWorkoutID
	wl := &entity.WorkoutLog{
		UserID:             userID,
		ScheduledWorkoutID: &swID,
		CompletedAt:        completedAt,
		TotalTime:          req.TotalTime,
		Notes:              req.Notes,
	}
	err := ls.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := ls.schedules.GetByID(ctx, swID, userID); err != nil {
			if errors.Is(err, errorvalues.ErrScheduleNotFound) {
				return errorvalues.ErrScheduledWorkoutNotFound
			}
			return fmt.Errorf("schedules repository error: %w", err)
		}
		if err := ls.logs.Create(ctx, wl); err != nil {
			if errors.Is(err, errorvalues.ErrScheduledWorkoutNotFound) || errors.Is(err, errorvalues.ErrValidation) {
				return err
			}
			return fmt.Errorf("logs repository error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wl, nil
}

func (ls *LogService) ListLogs(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.WorkoutLog, error) {
	logs, err := ls.logs.ListByUser(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	if len(logs) == 0 {
		return nil, errorvalues.ErrLogNotFound
	}
	return logs, nil
}

func (ls *LogService) GetLog(ctx context.Context, logID, userID uuid.UUID) (*entity.WorkoutLog, error) {
	wl, err := ls.logs.GetByID(ctx, logID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	return wl, nil
}
