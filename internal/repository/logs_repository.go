package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

type LogsRepository struct {
	conn PgConnection
}

func NewLogsRepo(conn PgConnection) *LogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for logsRepo: " + err.Error())
	}
	return &LogsRepository{
		conn: conn,
	}
}

func (lr *LogsRepository) Create(ctx context.Context, wl *entity.WorkoutLog) error {
	row := pick(ctx, lr.conn).QueryRow(ctx, `INSERT INTO workout_logs (user_id, scheduled_workout_id, completed_at, total_time, notes) VALUES ($1, $2, $3, $4, $5) RETURNING log_id;`,
		wl.UserID,
		wl.ScheduledWorkoutID,
		wl.CompletedAt,
		wl.TotalTime,
		wl.Notes,
	)
	if err := row.Scan(&wl.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return errorvalues.ErrScheduledWorkoutNotFound
			// Check violation
			case "23514":
				return errorvalues.ErrValidation
			}
		}
		return dbError(ctx, "creating workout log db error", err)
	}
	return nil
}

func (lr *LogsRepository) GetByID(ctx context.Context, logID, userID uuid.UUID) (*entity.WorkoutLog, error) {
	var wl entity.WorkoutLog
	row := pick(ctx, lr.conn).QueryRow(ctx, `SELECT log_id, user_id, scheduled_workout_id, completed_at, total_time, notes FROM workout_logs WHERE log_id = $1 AND user_id = $2;`, logID, userID)
	if err := row.Scan(&wl.ID, &wl.UserID, &wl.ScheduledWorkoutID, &wl.CompletedAt, &wl.TotalTime, &wl.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, dbError(ctx, "getting workout log by id error", err)
	}
	return &wl, nil
}

func (lr *LogsRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutLog, error) {
	rows, err := pick(ctx, lr.conn).Query(ctx, `SELECT log_id, user_id, scheduled_workout_id, completed_at, total_time, notes FROM workout_logs WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2 OFFSET $3;`, userID, limit, offset)
	if err != nil {
		return nil, dbError(ctx, "listing workout logs error", err)
	}
	defer rows.Close()
	logs := make([]*entity.WorkoutLog, 0)
	for rows.Next() {
		wl := entity.WorkoutLog{}
		if err = rows.Scan(&wl.ID, &wl.UserID, &wl.ScheduledWorkoutID, &wl.CompletedAt, &wl.TotalTime, &wl.Notes); err != nil {
			return nil, dbError(ctx, "unmarshalling workout log error", err)
		}
		logs = append(logs, &wl)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(ctx, "unexpected error after scanning", err)
	}
	return logs, nil
}

func (lr *LogsRepository) ProgressReport(ctx context.Context, userID uuid.UUID) (*entity.ProgressReport, error) {
	var report entity.ProgressReport
	row := pick(ctx, lr.conn).QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(total_time), 0) FROM workout_logs WHERE user_id = $1;`, userID)
	if err := row.Scan(&report.TotalWorkouts, &report.TotalTimeSpent); err != nil {
		return nil, dbError(ctx, "aggregating workout logs error", err)
	}
	return &report, nil
}
