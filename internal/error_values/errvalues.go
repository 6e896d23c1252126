package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("user with such email already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
)

// Absence. Ownership mismatches are reported with the same errors.
var (
	ErrPlanNotFound             = errors.New("workout plan not found")
	ErrScheduleNotFound         = errors.New("scheduled workout not found")
	ErrScheduledWorkoutNotFound = errors.New("referenced scheduled workout not found")
	ErrLogNotFound              = errors.New("workout log not found")
	ErrExerciseNotFound         = errors.New("exercise not found")
)

// Caller-correctable input.
var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidStatus        = errors.New("invalid scheduled workout status")
	ErrEmptyUpdate          = errors.New("no fields to update")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

var ErrSweepFailed = errors.New("marking missed workouts failed")
