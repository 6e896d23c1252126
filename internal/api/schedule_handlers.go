package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/entity"
	"github.com/limbo/workout/pkg/httputil"
)

type CreateScheduleBody struct {
	PlanID        uuid.UUID             `json:"plan_id"`
	ScheduledDate entity.Date           `json:"scheduled_date"`
	ScheduledTime *entity.TimeOfDay     `json:"scheduled_time"`
	Status        entity.ScheduleStatus `json:"status"`
}

// UpdateScheduleBody treats absent and null fields alike: both leave the
// stored value untouched.
type UpdateScheduleBody struct {
	PlanID        *uuid.UUID             `json:"plan_id"`
	ScheduledDate *entity.Date           `json:"scheduled_date"`
	ScheduledTime *entity.TimeOfDay     `json:"scheduled_time"`
	Status        *entity.ScheduleStatus `json:"status"`
}

func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "create schedule")
	if !ok {
		return
	}
	var body CreateScheduleBody
	if !decodeBody(w, r, "create schedule", &body) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	sw, err := s.scheduleService.CreateSchedule(ctx, uid, &service.CreateScheduleRequest{
		PlanID:        body.PlanID,
		ScheduledDate: body.ScheduledDate,
		ScheduledTime: body.ScheduledTime,
		Status:        body.Status,
	})
	if err != nil {
		writeServiceError(w, r, "create schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sw)
	GetLoggerFromCtx(r.Context()).Info("workout scheduled")
}

func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "list schedules")
	if !ok {
		return
	}
	pag, ok := pagination(w, r)
	if !ok {
		return
	}
	status := entity.ScheduleStatus(r.URL.Query().Get("status"))
	ctx, cancel := s.requestContext(r)
	defer cancel()
	schedules, err := s.scheduleService.ListSchedules(ctx, uid, status, pag)
	if err != nil {
		writeServiceError(w, r, "list schedules", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, schedules)
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "get schedule")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "get schedule")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	sw, err := s.scheduleService.GetSchedule(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "get schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sw)
}

func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "update schedule")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "update schedule")
	if !ok {
		return
	}
	var body UpdateScheduleBody
	if !decodeBody(w, r, "update schedule", &body) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	sw, err := s.scheduleService.UpdateSchedule(ctx, id, uid, entity.ScheduleUpdate{
		PlanID:        body.PlanID,
		ScheduledDate: body.ScheduledDate,
		ScheduledTime: body.ScheduledTime,
		Status:        body.Status,
	})
	if err != nil {
		writeServiceError(w, r, "update schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sw)
}

func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "delete schedule")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "delete schedule")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.scheduleService.DeleteSchedule(ctx, id, uid); err != nil {
		writeServiceError(w, r, "delete schedule", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "scheduled workout deleted")
}
