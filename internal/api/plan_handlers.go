package api

import (
	"net/http"

	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/httputil"
)

type PlanExerciseBody struct {
	ExerciseID int      `json:"exercise_id"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight"`
	Comments   *string  `json:"comments"`
}

type PlanBody struct {
	Name        string             `json:"plan_name"`
	Description *string            `json:"description"`
	Exercises   []PlanExerciseBody `json:"exercises"`
}

func (b *PlanBody) toRequest() *service.PlanRequest {
	req := &service.PlanRequest{
		Name:        b.Name,
		Description: b.Description,
		Exercises:   make([]service.PlanExerciseRequest, 0, len(b.Exercises)),
	}
	for _, ex := range b.Exercises {
		req.Exercises = append(req.Exercises, service.PlanExerciseRequest{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Weight:     ex.Weight,
			Comments:   ex.Comments,
		})
	}
	return req
}

func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "create plan")
	if !ok {
		return
	}
	var body PlanBody
	if !decodeBody(w, r, "create plan", &body) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	plan, err := s.planService.CreatePlan(ctx, uid, body.toRequest())
	if err != nil {
		writeServiceError(w, r, "create plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
	GetLoggerFromCtx(r.Context()).Info("workout plan created")
}

func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "list plans")
	if !ok {
		return
	}
	pag, ok := pagination(w, r)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	plans, err := s.planService.ListPlans(ctx, uid, pag)
	if err != nil {
		writeServiceError(w, r, "list plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "get plan")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "get plan")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	plan, err := s.planService.GetPlanWithExercises(ctx, id, uid)
	if err != nil {
		writeServiceError(w, r, "get plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "update plan")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "update plan")
	if !ok {
		return
	}
	var body PlanBody
	if !decodeBody(w, r, "update plan", &body) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	plan, err := s.planService.UpdatePlan(ctx, id, uid, body.toRequest())
	if err != nil {
		writeServiceError(w, r, "update plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "delete plan")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "delete plan")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.planService.DeletePlan(ctx, id, uid); err != nil {
		writeServiceError(w, r, "delete plan", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "workout plan deleted")
}
