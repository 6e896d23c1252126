package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_date"`
}

// Exercise is a read-only catalog entry.
type Exercise struct {
	ID          int    `json:"exercise_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type WorkoutPlan struct {
	ID          uuid.UUID `json:"plan_id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"plan_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlanExercise is a row of a plan. ExerciseName, Description and Category
// are filled from the exercise catalog and are not stored with the row.
type PlanExercise struct {
	ID           uuid.UUID `json:"plan_exercise_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	ExerciseID   int       `json:"exercise_id"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight"`
	Comments     *string   `json:"comments"`
	ExerciseName string    `json:"exercise_name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
}

type PlanMetadata struct {
	ExerciseCount int `json:"exercise_count"`
}

// PlanDetails is the denormalized view of a plan with its enriched exercises.
type PlanDetails struct {
	WorkoutPlan
	Exercises []PlanExercise `json:"exercises"`
	Metadata  PlanMetadata   `json:"metadata"`
}

type ScheduledWorkout struct {
	ID            uuid.UUID      `json:"scheduled_workout_id"`
	PlanID        uuid.UUID      `json:"plan_id"`
	UserID        uuid.UUID      `json:"user_id"`
	ScheduledDate Date           `json:"scheduled_date"`
	ScheduledTime TimeOfDay      `json:"scheduled_time"`
	Status        ScheduleStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	PlanDetails   *PlanDetails   `json:"plan_details,omitempty"`
}

// ScheduleUpdate holds the optional fields of a partial schedule update.
// A nil field is left untouched.
type ScheduleUpdate struct {
	PlanID        *uuid.UUID
	ScheduledDate *Date
	ScheduledTime *TimeOfDay
	Status        *ScheduleStatus
}

func (u ScheduleUpdate) Empty() bool {
	return u.PlanID == nil && u.ScheduledDate == nil && u.ScheduledTime == nil && u.Status == nil
}

type WorkoutLog struct {
	ID                 uuid.UUID  `json:"log_id"`
	UserID             uuid.UUID  `json:"user_id"`
	ScheduledWorkoutID *uuid.UUID `json:"scheduled_workout_id"`
	CompletedAt        time.Time  `json:"completed_at"`
	TotalTime          int        `json:"total_time"`
	Notes              string     `json:"notes"`
}

type ProgressReport struct {
	TotalWorkouts  int64 `json:"total_workouts"`
	TotalTimeSpent int64 `json:"total_time_spent"`
}
