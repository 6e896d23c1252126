package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/httputil"
)

var notFoundErrors = []error{
	errorvalues.ErrUserNotFound,
	errorvalues.ErrPlanNotFound,
	errorvalues.ErrScheduleNotFound,
	errorvalues.ErrScheduledWorkoutNotFound,
	errorvalues.ErrLogNotFound,
}

var validationErrors = []error{
	errorvalues.ErrValidation,
	errorvalues.ErrExerciseNotFound,
	errorvalues.ErrEmptyUpdate,
	errorvalues.ErrInvalidStatus,
	errorvalues.ErrTransitionNotAllowed,
}

func isAny(err error, targets []error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

// writeServiceError maps a service error to a response. Storage errors are
// logged in full and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	if target, ok := isAny(err, notFoundErrors); ok {
		logger.Info(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, target.Error(), nil)
		return
	}
	if _, ok := isAny(err, validationErrors); ok {
		logger.Info(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
		return
	}
	switch {
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Info(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Info(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Error(op+" error: timed out", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "request timed out, try again later", nil)
	case errors.Is(err, errorvalues.ErrSweepFailed):
		logger.Error(op+" error: sweep failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while refreshing scheduled workouts", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "error while processing "+op+" request", nil)
	}
}
