package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/httputil"
)

type CreateLogBody struct {
	ScheduledWorkoutID uuid.UUID  `json:"scheduled_workout_id"`
	CompletedAt        *time.Time `json:"completed_at"`
	TotalTime          int        `json:"total_time"`
	Notes              string     `json:"notes"`
}

func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "create log")
	if !ok {
		return
	}
	var body CreateLogBody
	if !decodeBody(w, r, "create log", &body) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	wl, err := s.logService.CreateLog(ctx, uid, &service.CreateLogRequest{
		ScheduledWorkoutID: body.ScheduledWorkoutID,
		CompletedAt:        body.CompletedAt,
		TotalTime:          body.TotalTime,
		Notes:              body.Notes,
	})
	if err != nil {
		writeServiceError(w, r, "create log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, wl)
	GetLoggerFromCtx(r.Context()).Info("workout logged")
}

func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "list logs")
	if !ok {
		return
	}
	pag, ok := pagination(w, r)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	logs, err := s.logService.ListLogs(ctx, uid, pag)
	if err != nil {
		writeServiceError(w, r, "list logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "get log")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "get log")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	wl, err := s.logService.GetLog(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "get log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, wl)
}
