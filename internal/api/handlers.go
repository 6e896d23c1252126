package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/httputil"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

// authorizedUID writes 401 and returns false when the request carries no uid.
func authorizedUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Info(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func pagination(w http.ResponseWriter, r *http.Request) (service.PaginationOpts, bool) {
	limit, offset, err := httputil.Pagination(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid pagination", err)
		return service.PaginationOpts{}, false
	}
	return service.PaginationOpts{Limit: limit, Offset: offset}, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if r.Body != nil {
		defer r.Body.Close()
	}
	if err := httputil.DecodeJSON(r, dst); err != nil {
		GetLoggerFromCtx(r.Context()).Info(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := s.requestContext(r)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteMessage(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	httputil.WriteMessage(w, http.StatusOK, "ok")
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, "registering", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, "login", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "me")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "me", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, "account deletion", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, r, "account deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "account deleted")
	GetLoggerFromCtx(r.Context()).Info("account deleted")
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()
	exercises, err := s.exerciseService.ListExercises(ctx)
	if err != nil {
		writeServiceError(w, r, "listing exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercises)
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	exercise, err := s.exerciseService.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrExerciseNotFound.Error(), nil)
			return
		}
		writeServiceError(w, r, "getting exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
}

func (s *Server) ProgressReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := authorizedUID(w, r, "progress report")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.reportService.GenerateProgressReport(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "progress report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}
