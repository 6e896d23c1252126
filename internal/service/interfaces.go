package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/workout/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Email     string `validate:"required,email,max=255"`
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Password  string `validate:"required,min=8,max=72,strong_password"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type PlanExerciseRequest struct {
	ExerciseID int      `validate:"gt=0"`
	Sets       int      `validate:"gte=0"`
	Reps       int      `validate:"gte=0"`
	Weight     *float64 `validate:"omitempty,gte=0"`
	Comments   *string  `validate:"omitempty,max=1000"`
}

// PlanRequest is used both for creation and for full-replace update.
type PlanRequest struct {
	Name        string                `validate:"required,max=255"`
	Description *string               `validate:"omitempty,max=2000"`
	Exercises   []PlanExerciseRequest `validate:"dive"`
}

type CreateScheduleRequest struct {
	PlanID        uuid.UUID `validate:"required"`
	ScheduledDate entity.Date
	ScheduledTime *entity.TimeOfDay
	// Empty status means pending
	Status entity.ScheduleStatus `validate:"omitempty,schedule_status"`
}

type CreateLogRequest struct {
	ScheduledWorkoutID uuid.UUID `validate:"required"`
	// Nil means now
	CompletedAt *time.Time
	TotalTime   int    `validate:"gte=0"`
	Notes       string `validate:"max=4000"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ExerciseServiceI interface {
	ListExercises(ctx context.Context) ([]entity.Exercise, error)
	GetExercise(ctx context.Context, id int) (*entity.Exercise, error)
}

// PlanAggregatorI assembles a plan with its catalog-enriched exercises.
type PlanAggregatorI interface {
	GetPlanWithExercises(ctx context.Context, planID, userID uuid.UUID) (*entity.PlanDetails, error)
}

type PlanServiceI interface {
	PlanAggregatorI
	CreatePlan(ctx context.Context, userID uuid.UUID, req *PlanRequest) (*entity.PlanDetails, error)
	// Lists user's plans with details. Empty result gives ErrPlanNotFound
	ListPlans(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.PlanDetails, error)
	// Replaces name, description and the whole exercise set
	UpdatePlan(ctx context.Context, planID, userID uuid.UUID, req *PlanRequest) (*entity.PlanDetails, error)
	DeletePlan(ctx context.Context, planID, userID uuid.UUID) error
}

type ScheduleServiceI interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, req *CreateScheduleRequest) (*entity.ScheduledWorkout, error)
	// Empty result gives ErrScheduleNotFound
	ListSchedules(ctx context.Context, userID uuid.UUID, status entity.ScheduleStatus, pagination PaginationOpts) ([]*entity.ScheduledWorkout, error)
	GetSchedule(ctx context.Context, id, userID uuid.UUID) (*entity.ScheduledWorkout, error)
	UpdateSchedule(ctx context.Context, id, userID uuid.UUID, upd entity.ScheduleUpdate) (*entity.ScheduledWorkout, error)
	DeleteSchedule(ctx context.Context, id, userID uuid.UUID) error
}

type LogServiceI interface {
	CreateLog(ctx context.Context, userID uuid.UUID, req *CreateLogRequest) (*entity.WorkoutLog, error)
	// Empty result gives ErrLogNotFound
	ListLogs(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.WorkoutLog, error)
	GetLog(ctx context.Context, logID, userID uuid.UUID) (*entity.WorkoutLog, error)
}

type ReportServiceI interface {
	GenerateProgressReport(ctx context.Context, userID uuid.UUID) (*entity.ProgressReport, error)
}
