package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/pkg/clock"
	"github.com/limbo/workout/pkg/entity"
)

// ScheduleService is the scheduled workout lifecycle engine. Every read of a
// user's schedules and every update is preceded by a sweep that marks that
// user's overdue pending workouts as missed.
type ScheduleService struct {
	tx         repository.TransactorI
	schedules  repository.SchedulesRepositoryI
	plans      repository.PlansRepositoryI
	aggregator PlanAggregatorI
	clock      clock.Clock
	policy     TransitionPolicy
	missed     prometheus.Counter
}

type ScheduleOption func(*ScheduleService)

func WithClock(c clock.Clock) ScheduleOption {
	return func(s *ScheduleService) {
		s.clock = c
	}
}

func WithTransitionPolicy(p TransitionPolicy) ScheduleOption {
	return func(s *ScheduleService) {
		s.policy = p
	}
}

// WithMissedCounter counts workouts marked missed by sweeps.
func WithMissedCounter(c prometheus.Counter) ScheduleOption {
	return func(s *ScheduleService) {
		s.missed = c
	}
}

func NewScheduleService(tx repository.TransactorI, schedules repository.SchedulesRepositoryI, plans repository.PlansRepositoryI,
	aggregator PlanAggregatorI, opts ...ScheduleOption) *ScheduleService {
	if tx == nil || schedules == nil || plans == nil || aggregator == nil {
		log.Fatal("on schedule service provided nil dependencies")
	}
	s := &ScheduleService{
		tx:         tx,
		schedules:  schedules,
		plans:      plans,
		aggregator: aggregator,
		clock:      clock.New(),
		policy:     AllowAnyTransition{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func wrapScheduleErr(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrScheduleNotFound),
		errors.Is(err, errorvalues.ErrPlanNotFound),
		errors.Is(err, errorvalues.ErrInvalidStatus),
		errors.Is(err, errorvalues.ErrEmptyUpdate),
		errors.Is(err, errorvalues.ErrSweepFailed):
		return err
	}
	return fmt.Errorf("schedules repository error: %w", err)
}

// sweep runs outside of any caller transaction so that its result is
// committed even if the following operation fails.
func (s *ScheduleService) sweep(ctx context.Context, userID uuid.UUID) error {
	now := s.clock.Now()
	n, err := s.schedules.MarkMissed(ctx, userID, entity.DateOf(now), entity.TimeOfDayOf(now))
	if err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrSweepFailed, err)
	}
	s.countMissed(n)
	return nil
}

func (s *ScheduleService) countMissed(n int64) {
	if s.missed != nil && n > 0 {
		s.missed.Add(float64(n))
	}
}

// SweepAll marks overdue pending workouts of every user as missed.
func (s *ScheduleService) SweepAll(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	n, err := s.schedules.MarkAllMissed(ctx, entity.DateOf(now), entity.TimeOfDayOf(now))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errorvalues.ErrSweepFailed, err)
	}
	s.countMissed(n)
	return n, nil
}

func (s *ScheduleService) ensurePlan(ctx context.Context, planID, userID uuid.UUID) error {
	exists, err := s.plans.Exists(ctx, planID, userID)
	if err != nil {
		return fmt.Errorf("plans repository error: %w", err)
	}
	if !exists {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

// attachDetails fetches each distinct plan once per call.
func (s *ScheduleService) attachDetails(ctx context.Context, userID uuid.UUID, schedules ...*entity.ScheduledWorkout) error {
	seen := make(map[uuid.UUID]*entity.PlanDetails, len(schedules))
	for _, sw := range schedules {
		details, ok := seen[sw.PlanID]
		if !ok {
			var err error
			details, err = s.aggregator.GetPlanWithExercises(ctx, sw.PlanID, userID)
			if err != nil {
				return err
			}
			seen[sw.PlanID] = details
		}
		sw.PlanDetails = details
	}
	return nil
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, userID uuid.UUID, req *CreateScheduleRequest) (*entity.ScheduledWorkout, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_date is required", errorvalues.ErrValidation)
	}
	if req.ScheduledTime == nil {
		return nil, fmt.Errorf("%w: scheduled_time is required", errorvalues.ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = entity.StatusPending
	}
	sw := &entity.ScheduledWorkout{
		PlanID:        req.PlanID,
		UserID:        userID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: *req.ScheduledTime,
		Status:        status,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensurePlan(ctx, req.PlanID, userID); err != nil {
			return err
		}
		if err := s.schedules.Create(ctx, sw); err != nil {
			return wrapScheduleErr(err)
		}
		return s.attachDetails(ctx, userID, sw)
	})
	if err != nil {
		return nil, err
	}
	return sw, nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, userID uuid.UUID, status entity.ScheduleStatus, pagination PaginationOpts) ([]*entity.ScheduledWorkout, error) {
	if status == "" {
		status = entity.StatusAll
	}
	if !status.ValidFilter() {
		return nil, errorvalues.ErrInvalidStatus
	}
	if err := s.sweep(ctx, userID); err != nil {
		return nil, err
	}
	var result []*entity.ScheduledWorkout
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		schedules, err := s.schedules.List(ctx, userID, status, pagination.Limit, pagination.Offset)
		if err != nil {
			return wrapScheduleErr(err)
		}
		if len(schedules) == 0 {
			return errorvalues.ErrScheduleNotFound
		}
		if err = s.attachDetails(ctx, userID, schedules...); err != nil {
			return err
		}
		result = schedules
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id, userID uuid.UUID) (*entity.ScheduledWorkout, error) {
	if err := s.sweep(ctx, userID); err != nil {
		return nil, err
	}
	var sw *entity.ScheduledWorkout
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		sw, err = s.schedules.GetByID(ctx, id, userID)
		if err != nil {
			return wrapScheduleErr(err)
		}
		return s.attachDetails(ctx, userID, sw)
	})
	if err != nil {
		return nil, err
	}
	return sw, nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, id, userID uuid.UUID, upd entity.ScheduleUpdate) (*entity.ScheduledWorkout, error) {
	if upd.Empty() {
		return nil, errorvalues.ErrEmptyUpdate
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, errorvalues.ErrInvalidStatus
	}
	if upd.ScheduledDate != nil && upd.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_date must be a valid date", errorvalues.ErrValidation)
	}
	if upd.PlanID != nil {
		if err := s.ensurePlan(ctx, *upd.PlanID, userID); err != nil {
			return nil, err
		}
	}
	if err := s.sweep(ctx, userID); err != nil {
		return nil, err
	}
	var sw *entity.ScheduledWorkout
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if upd.Status != nil {
			current, err := s.schedules.GetByID(ctx, id, userID)
			if err != nil {
				return wrapScheduleErr(err)
			}
			if !s.policy.Allowed(current.Status, *upd.Status) {
				return fmt.Errorf("%w: %s -> %s", errorvalues.ErrTransitionNotAllowed, current.Status, *upd.Status)
			}
		}
		var err error
		sw, err = s.schedules.Update(ctx, id, userID, upd)
		if err != nil {
			return wrapScheduleErr(err)
		}
		return s.attachDetails(ctx, userID, sw)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("scheduled workout updated", slog.String("scheduled_workout_id", id.String()), slog.String("status", string(sw.Status)))
	return sw, nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.schedules.Delete(ctx, id, userID); err != nil {
		return wrapScheduleErr(err)
	}
	return nil
}
