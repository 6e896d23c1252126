// @title Workout tracker API
// @description API for planning, scheduling and logging workouts
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"database/sql"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/limbo/workout/internal/api"
	"github.com/limbo/workout/internal/metrics"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/internal/sweeper"
	"github.com/limbo/workout/pkg/cleanup"
	"github.com/limbo/workout/pkg/config"
	jwtservice "github.com/limbo/workout/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetString("LOG_FILE"), cfg.GetStringOr("LOG_LEVEL", "info"))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, &dbCfg, int32(cfg.GetInt("POSTGRES_MAX_CONNS", 10)))
	if err != nil {
		log.Fatal(err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": dbCfg.DB}),
	)
	metricsManager := metrics.NewManager("workout", "api", registry)

	tx := repository.NewTransactor(pool)
	plansRepo := repository.NewPlansRepo(pool)
	schedulesRepo := repository.NewSchedulesRepo(pool)
	logsRepo := repository.NewLogsRepo(pool)
	catalog := repository.NewCachedExercisesRepo(
		repository.NewExercisesRepo(pool),
		cfg.GetInt("CATALOG_CACHE_MB", 1)*1024*1024,
		cfg.GetDuration("CATALOG_CACHE_TTL", time.Hour),
	)

	userService := service.NewUserService(repository.NewUsersRepo(pool))
	planService := service.NewPlanService(tx, plansRepo, catalog)
	scheduleOpts := []service.ScheduleOption{service.WithMissedCounter(metricsManager.CounterMissedWorkouts)}
	if cfg.GetBool("STRICT_STATUS_TRANSITIONS", false) {
		scheduleOpts = append(scheduleOpts, service.WithTransitionPolicy(service.StrictTransitions{}))
	}
	scheduleService := service.NewScheduleService(tx, schedulesRepo, plansRepo, planService, scheduleOpts...)

	sw := sweeper.New(scheduleService, cfg.GetDuration("SWEEP_TIMEOUT", 30*time.Second), metricsManager)
	if err = sw.Schedule(cfg.GetStringOr("SWEEP_SCHEDULE", sweeper.DefaultSchedule)); err != nil {
		log.Fatal(err)
	}
	sw.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping sweeper",
		F: func() error {
			sw.Stop()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:     userService,
		ExerciseService: service.NewExerciseService(catalog),
		PlanService:     planService,
		ScheduleService: scheduleService,
		LogService:      service.NewLogService(tx, logsRepo, schedulesRepo, nil),
		ReportService:   service.NewReportService(logsRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		Metrics:         metricsManager,
		Gatherer:        registry,
		DB:              pool,
		RequestTimeout:  cfg.GetDuration("REQUEST_TIMEOUT", api.DefaultRequestTimeout),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err = cleanup.CleanUp(); err != nil {
		slog.Error("cleanup finished with errors", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func migrate(cfg repository.DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString()+"?sslmode=disable")
	if err != nil {
		return err
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(conn, dir)
}

// setupLogger writes JSON logs to stdout and, when file is set, to a rotated
// log file as well.
func setupLogger(file, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	var out io.Writer = os.Stdout
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename: file,
			MaxSize:  50, // megabytes
			Compress: true,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    rotated.Close,
		})
		out = io.MultiWriter(os.Stdout, rotated)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})))
}
