package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

var errDB = errors.New("db error")

// passTx runs fn without a real transaction.
type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type catalogFake struct {
	exercises map[int]entity.Exercise
}

func newCatalogFake() *catalogFake {
	return &catalogFake{exercises: map[int]entity.Exercise{
		1: {ID: 1, Name: "Push Up", Description: "A basic push-up.", Category: "strength"},
		2: {ID: 2, Name: "Squat", Description: "A basic squat.", Category: "strength"},
		3: {ID: 3, Name: "Running", Description: "A basic running exercise.", Category: "cardio"},
	}}
}

func (c *catalogFake) GetByID(ctx context.Context, id int) (*entity.Exercise, error) {
	ex, ok := c.exercises[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", errorvalues.ErrExerciseNotFound, id)
	}
	return &ex, nil
}

func (c *catalogFake) List(ctx context.Context) ([]entity.Exercise, error) {
	res := make([]entity.Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		res = append(res, ex)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

type plansFake struct {
	mu        sync.Mutex
	catalog   *catalogFake
	plans     map[uuid.UUID]entity.WorkoutPlan
	exercises map[uuid.UUID][]entity.PlanExercise
}

func newPlansFake(catalog *catalogFake) *plansFake {
	return &plansFake{
		catalog:   catalog,
		plans:     make(map[uuid.UUID]entity.WorkoutPlan),
		exercises: make(map[uuid.UUID][]entity.PlanExercise),
	}
}

func (p *plansFake) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	plan.ID = uuid.New()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	p.plans[plan.ID] = *plan
	return nil
}

func (p *plansFake) AddExercise(ctx context.Context, ex *entity.PlanExercise) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.catalog.exercises[ex.ExerciseID]; !ok {
		return fmt.Errorf("%w: id %d", errorvalues.ErrExerciseNotFound, ex.ExerciseID)
	}
	if _, ok := p.plans[ex.PlanID]; !ok {
		return errorvalues.ErrPlanNotFound
	}
	ex.ID = uuid.New()
	p.exercises[ex.PlanID] = append(p.exercises[ex.PlanID], *ex)
	return nil
}

func (p *plansFake) GetByID(ctx context.Context, planID, userID uuid.UUID) (*entity.WorkoutPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	plan, ok := p.plans[planID]
	if !ok || plan.UserID != userID {
		return nil, errorvalues.ErrPlanNotFound
	}
	return &plan, nil
}

func (p *plansFake) Exists(ctx context.Context, planID, userID uuid.UUID) (bool, error) {
	_, err := p.GetByID(ctx, planID, userID)
	return err == nil, nil
}

func (p *plansFake) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	all := make([]*entity.WorkoutPlan, 0)
	for _, plan := range p.plans {
		if plan.UserID == userID {
			plan := plan
			all = append(all, &plan)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (p *plansFake) ListExercises(ctx context.Context, planID uuid.UUID) ([]entity.PlanExercise, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]entity.PlanExercise, len(p.exercises[planID]))
	copy(res, p.exercises[planID])
	return res, nil
}

func (p *plansFake) Update(ctx context.Context, plan *entity.WorkoutPlan) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	stored, ok := p.plans[plan.ID]
	if !ok || stored.UserID != plan.UserID {
		return errorvalues.ErrPlanNotFound
	}
	stored.Name = plan.Name
	stored.Description = plan.Description
	stored.UpdatedAt = time.Now()
	p.plans[plan.ID] = stored
	plan.CreatedAt, plan.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	return nil
}

func (p *plansFake) DeleteExercises(ctx context.Context, planID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.exercises, planID)
	return nil
}

func (p *plansFake) Delete(ctx context.Context, planID, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	plan, ok := p.plans[planID]
	if !ok || plan.UserID != userID {
		return errorvalues.ErrPlanNotFound
	}
	delete(p.plans, planID)
	delete(p.exercises, planID)
	return nil
}

type schedulesFake struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]entity.ScheduledWorkout
	sweeps int
}

func newSchedulesFake() *schedulesFake {
	return &schedulesFake{rows: make(map[uuid.UUID]entity.ScheduledWorkout)}
}

func (s *schedulesFake) Create(ctx context.Context, sw *entity.ScheduledWorkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw.ID = uuid.New()
	sw.CreatedAt = time.Now()
	s.rows[sw.ID] = *sw
	return nil
}

func (s *schedulesFake) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.ScheduledWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.rows[id]
	if !ok || sw.UserID != userID {
		return nil, errorvalues.ErrScheduleNotFound
	}
	return &sw, nil
}

func (s *schedulesFake) List(ctx context.Context, userID uuid.UUID, status entity.ScheduleStatus, limit, offset int) ([]*entity.ScheduledWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*entity.ScheduledWorkout, 0)
	for _, sw := range s.rows {
		if sw.UserID == userID && (status == entity.StatusAll || sw.Status == status) {
			sw := sw
			all = append(all, &sw)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ScheduledDate != all[j].ScheduledDate {
			return all[i].ScheduledDate.Before(all[j].ScheduledDate)
		}
		return all[j].ScheduledTime.Before(all[i].ScheduledTime)
	})
	return page(all, limit, offset), nil
}

func (s *schedulesFake) Update(ctx context.Context, id, userID uuid.UUID, upd entity.ScheduleUpdate) (*entity.ScheduledWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.rows[id]
	if !ok || sw.UserID != userID {
		return nil, errorvalues.ErrScheduleNotFound
	}
	if upd.PlanID != nil {
		sw.PlanID = *upd.PlanID
	}
	if upd.ScheduledDate != nil {
		sw.ScheduledDate = *upd.ScheduledDate
	}
	if upd.ScheduledTime != nil {
		sw.ScheduledTime = *upd.ScheduledTime
	}
	if upd.Status != nil {
		sw.Status = *upd.Status
	}
	s.rows[id] = sw
	return &sw, nil
}

func (s *schedulesFake) Delete(ctx context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw, ok := s.rows[id]
	if !ok || sw.UserID != userID {
		return errorvalues.ErrScheduleNotFound
	}
	delete(s.rows, id)
	return nil
}

func overdue(sw entity.ScheduledWorkout, today entity.Date, now entity.TimeOfDay) bool {
	return sw.ScheduledDate.Before(today) || (sw.ScheduledDate == today && sw.ScheduledTime.Before(now))
}

func (s *schedulesFake) MarkMissed(ctx context.Context, userID uuid.UUID, today entity.Date, now entity.TimeOfDay) (int64, error) {
	return s.mark(func(sw entity.ScheduledWorkout) bool { return sw.UserID == userID }, today, now)
}

func (s *schedulesFake) MarkAllMissed(ctx context.Context, today entity.Date, now entity.TimeOfDay) (int64, error) {
	return s.mark(func(entity.ScheduledWorkout) bool { return true }, today, now)
}

func (s *schedulesFake) mark(match func(entity.ScheduledWorkout) bool, today entity.Date, now entity.TimeOfDay) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	var n int64
	for id, sw := range s.rows {
		if match(sw) && sw.Status == entity.StatusPending && overdue(sw, today, now) {
			sw.Status = entity.StatusMissed
			s.rows[id] = sw
			n++
		}
	}
	return n, nil
}

// stored returns the row as persisted, bypassing the service.
func (s *schedulesFake) stored(id uuid.UUID) entity.ScheduledWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[id]
}

type logsFake struct {
	mu   sync.Mutex
	rows []entity.WorkoutLog
}

func (l *logsFake) Create(ctx context.Context, wl *entity.WorkoutLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	wl.ID = uuid.New()
	l.rows = append(l.rows, *wl)
	return nil
}

func (l *logsFake) GetByID(ctx context.Context, logID, userID uuid.UUID) (*entity.WorkoutLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, wl := range l.rows {
		if wl.ID == logID && wl.UserID == userID {
			wl := wl
			return &wl, nil
		}
	}
	return nil, errorvalues.ErrLogNotFound
}

func (l *logsFake) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := make([]*entity.WorkoutLog, 0)
	for _, wl := range l.rows {
		if wl.UserID == userID {
			wl := wl
			all = append(all, &wl)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CompletedAt.After(all[j].CompletedAt) })
	return page(all, limit, offset), nil
}

func (l *logsFake) ProgressReport(ctx context.Context, userID uuid.UUID) (*entity.ProgressReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var report entity.ProgressReport
	for _, wl := range l.rows {
		if wl.UserID == userID {
			report.TotalWorkouts++
			report.TotalTimeSpent += int64(wl.TotalTime)
		}
	}
	return &report, nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return all[:0]
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
