package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/workout/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user. ID and CreatedAt are filled on success
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	Delete(ctx context.Context, uid uuid.UUID) error
}

// ExercisesRepositoryI is the read-only exercise catalog.
type ExercisesRepositoryI interface {
	GetByID(ctx context.Context, id int) (*entity.Exercise, error)
	List(ctx context.Context) ([]entity.Exercise, error)
}

type PlansRepositoryI interface {
	// Creates plan row. ID, CreatedAt, UpdatedAt are filled on success
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	// Inserts one exercise row of a plan. Unknown exercise_id gives ErrExerciseNotFound
	AddExercise(ctx context.Context, exercise *entity.PlanExercise) error
	GetByID(ctx context.Context, planID, userID uuid.UUID) (*entity.WorkoutPlan, error)
	Exists(ctx context.Context, planID, userID uuid.UUID) (bool, error)
	// Lists plans owned by user. Requires pagination params provided
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutPlan, error)
	// Lists exercise rows of a plan in insertion order
	ListExercises(ctx context.Context, planID uuid.UUID) ([]entity.PlanExercise, error)
	// Replaces name and description, bumps updated_at
	Update(ctx context.Context, plan *entity.WorkoutPlan) error
	DeleteExercises(ctx context.Context, planID uuid.UUID) error
	Delete(ctx context.Context, planID, userID uuid.UUID) error
}

type SchedulesRepositoryI interface {
	// Creates scheduled workout. ID and CreatedAt are filled on success
	Create(ctx context.Context, sw *entity.ScheduledWorkout) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.ScheduledWorkout, error)
	// Lists user's scheduled workouts by date ascending, time descending.
	// StatusAll disables status filtering
	List(ctx context.Context, userID uuid.UUID, status entity.ScheduleStatus, limit, offset int) ([]*entity.ScheduledWorkout, error)
	// Applies only non-nil fields of upd. Returns updated row
	Update(ctx context.Context, id, userID uuid.UUID, upd entity.ScheduleUpdate) (*entity.ScheduledWorkout, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// Marks user's overdue pending workouts as missed. Returns number of marked rows
	MarkMissed(ctx context.Context, userID uuid.UUID, today entity.Date, now entity.TimeOfDay) (int64, error)
	// Same as MarkMissed for every user
	MarkAllMissed(ctx context.Context, today entity.Date, now entity.TimeOfDay) (int64, error)
}

type LogsRepositoryI interface {
	// Creates log. Unknown scheduled workout gives ErrScheduledWorkoutNotFound
	Create(ctx context.Context, log *entity.WorkoutLog) error
	GetByID(ctx context.Context, logID, userID uuid.UUID) (*entity.WorkoutLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutLog, error)
	// Counts logs and sums their total_time
	ProgressReport(ctx context.Context, userID uuid.UUID) (*entity.ProgressReport, error)
}

// TransactorI runs fn inside one database transaction. Repositories called
// with the ctx passed to fn use that transaction.
type TransactorI interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
