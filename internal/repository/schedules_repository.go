package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

const scheduleColumns = `scheduled_workout_id, plan_id, user_id, scheduled_date, scheduled_time, status, created_at`

type SchedulesRepository struct {
	conn PgConnection
}

func NewSchedulesRepo(conn PgConnection) *SchedulesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for schedulesRepo: " + err.Error())
	}
	return &SchedulesRepository{
		conn: conn,
	}
}

func PgDate(d entity.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func PgTime(t entity.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Micros(), Valid: true}
}

func scanSchedule(row pgx.Row) (*entity.ScheduledWorkout, error) {
	var (
		sw     entity.ScheduledWorkout
		date   pgtype.Date
		tod    pgtype.Time
		status string
	)
	if err := row.Scan(&sw.ID, &sw.PlanID, &sw.UserID, &date, &tod, &status, &sw.CreatedAt); err != nil {
		return nil, err
	}
	sw.ScheduledDate = entity.DateOf(date.Time)
	sw.ScheduledTime = entity.TimeOfDayFromMicros(tod.Microseconds)
	sw.Status = entity.ScheduleStatus(status)
	return &sw, nil
}

func mapScheduleWriteErr(ctx context.Context, err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// Foreign key violation
		case "23503":
			return errorvalues.ErrPlanNotFound
		// Check violation
		case "23514":
			return errorvalues.ErrInvalidStatus
		}
	}
	return dbError(ctx, op+" error", err)
}

func (sr *SchedulesRepository) Create(ctx context.Context, sw *entity.ScheduledWorkout) error {
	row := pick(ctx, sr.conn).QueryRow(ctx, `INSERT INTO scheduled_workouts (plan_id, user_id, scheduled_date, scheduled_time, status) VALUES ($1, $2, $3, $4, $5) RETURNING scheduled_workout_id, created_at;`,
		sw.PlanID,
		sw.UserID,
		PgDate(sw.ScheduledDate),
		PgTime(sw.ScheduledTime),
		string(sw.Status),
	)
	if err := row.Scan(&sw.ID, &sw.CreatedAt); err != nil {
		return mapScheduleWriteErr(ctx, err, "creating scheduled workout")
	}
	return nil
}

func (sr *SchedulesRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.ScheduledWorkout, error) {
	row := pick(ctx, sr.conn).QueryRow(ctx, `SELECT `+scheduleColumns+` FROM scheduled_workouts WHERE scheduled_workout_id = $1 AND user_id = $2;`, id, userID)
	sw, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrScheduleNotFound
		}
		return nil, dbError(ctx, "getting scheduled workout by id error", err)
	}
	return sw, nil
}

func (sr *SchedulesRepository) List(ctx context.Context, userID uuid.UUID, status entity.ScheduleStatus, limit, offset int) ([]*entity.ScheduledWorkout, error) {
	rows, err := pick(ctx, sr.conn).Query(ctx, `SELECT `+scheduleColumns+` FROM scheduled_workouts WHERE user_id = $1 AND ($2::text = 'all' OR status = $2) ORDER BY scheduled_date ASC, scheduled_time DESC LIMIT $3 OFFSET $4;`,
		userID, string(status), limit, offset,
	)
	if err != nil {
		return nil, dbError(ctx, "listing scheduled workouts error", err)
	}
	defer rows.Close()
	schedules := make([]*entity.ScheduledWorkout, 0)
	for rows.Next() {
		sw, err := scanSchedule(rows)
		if err != nil {
			return nil, dbError(ctx, "unmarshalling scheduled workout error", err)
		}
		schedules = append(schedules, sw)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(ctx, "unexpected error after scanning", err)
	}
	return schedules, nil
}

// buildScheduleUpdate renders an UPDATE touching only the non-nil fields of
// upd. Column names come from a fixed list, values are always bound.
func buildScheduleUpdate(id, userID uuid.UUID, upd entity.ScheduleUpdate) (string, []any) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.PlanID != nil {
		add("plan_id", *upd.PlanID)
	}
	if upd.ScheduledDate != nil {
		add("scheduled_date", PgDate(*upd.ScheduledDate))
	}
	if upd.ScheduledTime != nil {
		add("scheduled_time", PgTime(*upd.ScheduledTime))
	}
	if upd.Status != nil {
		add("status", string(*upd.Status))
	}
	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE scheduled_workouts SET %s WHERE scheduled_workout_id = $%d AND user_id = $%d RETURNING %s;`,
		strings.Join(sets, ", "), len(args)-1, len(args), scheduleColumns)
	return query, args
}

func (sr *SchedulesRepository) Update(ctx context.Context, id, userID uuid.UUID, upd entity.ScheduleUpdate) (*entity.ScheduledWorkout, error) {
	if upd.Empty() {
		return nil, errorvalues.ErrEmptyUpdate
	}
	query, args := buildScheduleUpdate(id, userID, upd)
	sw, err := scanSchedule(pick(ctx, sr.conn).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrScheduleNotFound
		}
		return nil, mapScheduleWriteErr(ctx, err, "updating scheduled workout")
	}
	return sw, nil
}

func (sr *SchedulesRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	ct, err := pick(ctx, sr.conn).Exec(ctx, `DELETE FROM scheduled_workouts WHERE scheduled_workout_id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return dbError(ctx, "deleting scheduled workout error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrScheduleNotFound
	}
	return nil
}

func (sr *SchedulesRepository) MarkMissed(ctx context.Context, userID uuid.UUID, today entity.Date, now entity.TimeOfDay) (int64, error) {
	ct, err := pick(ctx, sr.conn).Exec(ctx, `UPDATE scheduled_workouts SET status = 'missed' WHERE user_id = $1 AND status = 'pending' AND (scheduled_date < $2 OR (scheduled_date = $2 AND scheduled_time < $3));`,
		userID, PgDate(today), PgTime(now),
	)
	if err != nil {
		return 0, dbError(ctx, "marking missed workouts error", err)
	}
	return ct.RowsAffected(), nil
}

func (sr *SchedulesRepository) MarkAllMissed(ctx context.Context, today entity.Date, now entity.TimeOfDay) (int64, error) {
	ct, err := pick(ctx, sr.conn).Exec(ctx, `UPDATE scheduled_workouts SET status = 'missed' WHERE status = 'pending' AND (scheduled_date < $1 OR (scheduled_date = $1 AND scheduled_time < $2));`,
		PgDate(today), PgTime(now),
	)
	if err != nil {
		return 0, dbError(ctx, "marking missed workouts error", err)
	}
	return ct.RowsAffected(), nil
}
