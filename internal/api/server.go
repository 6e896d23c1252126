package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/workout/internal/metrics"
	"github.com/limbo/workout/internal/service"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	exerciseService service.ExerciseServiceI
	planService     service.PlanServiceI
	scheduleService service.ScheduleServiceI
	logService      service.LogServiceI
	reportService   service.ReportServiceI
	jwtService      JWTServiceI
	metrics         *metrics.Manager
	gatherer        prometheus.Gatherer
	db              Pinger
	requestTimeout  time.Duration
}

type ServicesList struct {
	UserService     service.UserServiceI
	ExerciseService service.ExerciseServiceI
	PlanService     service.PlanServiceI
	ScheduleService service.ScheduleServiceI
	LogService      service.LogServiceI
	ReportService   service.ReportServiceI
	JwtService      JWTServiceI
	// Optional. Without Metrics the request metrics middleware is a no-op,
	// without Gatherer /metrics serves the default registry.
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
	// Optional. Without DB /health only reports the process is up.
	DB             Pinger
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	gatherer := servicesOptions.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		exerciseService: servicesOptions.ExerciseService,
		planService:     servicesOptions.PlanService,
		scheduleService: servicesOptions.ScheduleService,
		logService:      servicesOptions.LogService,
		reportService:   servicesOptions.ReportService,
		jwtService:      servicesOptions.JwtService,
		metrics:         servicesOptions.Metrics,
		gatherer:        gatherer,
		db:              servicesOptions.DB,
		requestTimeout:  timeout,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RequestMetricsMiddleware, s.PanicRecoveryMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/me", s.Me)
			r.Delete("/me", s.DeleteAccount)

			r.Get("/exercises", s.ListExercises)
			r.Get("/exercises/{id}", s.GetExercise)

			r.Post("/workout-plans", s.CreatePlan)
			r.Get("/workout-plans", s.ListPlans)
			r.Get("/workout-plans/{id}", s.GetPlan)
			r.Put("/workout-plans/{id}", s.UpdatePlan)
			r.Delete("/workout-plans/{id}", s.DeletePlan)

			r.Post("/scheduled-workouts", s.CreateSchedule)
			r.Get("/scheduled-workouts", s.ListSchedules)
			r.Get("/scheduled-workouts/{id}", s.GetSchedule)
			r.Patch("/scheduled-workouts/{id}", s.UpdateSchedule)
			r.Delete("/scheduled-workouts/{id}", s.DeleteSchedule)

			r.Post("/workout-logs", s.CreateLog)
			r.Get("/workout-logs", s.ListLogs)
			r.Get("/workout-logs/{id}", s.GetLog)

			r.Get("/reports/progress", s.ProgressReport)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down http server error: " + err.Error())
	}
	slog.Info("http server stopped")
	return nil
}
