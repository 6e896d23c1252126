package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

type PlansRepository struct {
	conn PgConnection
}

func NewPlansRepo(conn PgConnection) *PlansRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for plansRepo: " + err.Error())
	}
	return &PlansRepository{
		conn: conn,
	}
}

func (pr *PlansRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	row := pick(ctx, pr.conn).QueryRow(ctx, `INSERT INTO workout_plans (user_id, plan_name, description) VALUES ($1, $2, $3) RETURNING plan_id, created_at, updated_at;`,
		plan.UserID,
		plan.Name,
		plan.Description,
	)
	if err := row.Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return dbError(ctx, "creating plan db error", err)
	}
	return nil
}

func (pr *PlansRepository) AddExercise(ctx context.Context, ex *entity.PlanExercise) error {
	row := pick(ctx, pr.conn).QueryRow(ctx, `INSERT INTO workout_plan_exercises (plan_id, exercise_id, sets, reps, weight, comments) VALUES ($1, $2, $3, $4, $5, $6) RETURNING plan_exercise_id;`,
		ex.PlanID,
		ex.ExerciseID,
		ex.Sets,
		ex.Reps,
		ex.Weight,
		ex.Comments,
	)
	if err := row.Scan(&ex.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				if pgErr.ConstraintName == "workout_plan_exercises_plan_id_fkey" {
					return errorvalues.ErrPlanNotFound
				}
				return fmt.Errorf("%w: id %d", errorvalues.ErrExerciseNotFound, ex.ExerciseID)
			// Check violation
			case "23514":
				return fmt.Errorf("%w: sets, reps and weight must not be negative", errorvalues.ErrValidation)
			}
		}
		return dbError(ctx, "adding plan exercise db error", err)
	}
	return nil
}

func (pr *PlansRepository) GetByID(ctx context.Context, planID, userID uuid.UUID) (*entity.WorkoutPlan, error) {
	var plan entity.WorkoutPlan
	row := pick(ctx, pr.conn).QueryRow(ctx, `SELECT plan_id, user_id, plan_name, description, created_at, updated_at FROM workout_plans WHERE plan_id = $1 AND user_id = $2;`, planID, userID)
	if err := row.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlanNotFound
		}
		return nil, dbError(ctx, "getting plan by id error", err)
	}
	return &plan, nil
}

func (pr *PlansRepository) Exists(ctx context.Context, planID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := pick(ctx, pr.conn).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM workout_plans WHERE plan_id = $1 AND user_id = $2);`, planID, userID)
	if err := row.Scan(&exists); err != nil {
		return false, dbError(ctx, "checking plan existence error", err)
	}
	return exists, nil
}

func (pr *PlansRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.WorkoutPlan, error) {
	rows, err := pick(ctx, pr.conn).Query(ctx, `SELECT plan_id, user_id, plan_name, description, created_at, updated_at FROM workout_plans WHERE user_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3;`, userID, limit, offset)
	if err != nil {
		return nil, dbError(ctx, "getting plans by uid error", err)
	}
	defer rows.Close()
	plans := make([]*entity.WorkoutPlan, 0)
	for rows.Next() {
		p := entity.WorkoutPlan{}
		if err = rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dbError(ctx, "unmarshalling plan error", err)
		}
		plans = append(plans, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(ctx, "unexpected error after scanning", err)
	}
	return plans, nil
}

func (pr *PlansRepository) ListExercises(ctx context.Context, planID uuid.UUID) ([]entity.PlanExercise, error) {
	rows, err := pick(ctx, pr.conn).Query(ctx, `SELECT plan_exercise_id, plan_id, exercise_id, sets, reps, weight, comments FROM workout_plan_exercises WHERE plan_id = $1 ORDER BY seq ASC;`, planID)
	if err != nil {
		return nil, dbError(ctx, "getting plan exercises error", err)
	}
	defer rows.Close()
	exercises := make([]entity.PlanExercise, 0)
	for rows.Next() {
		var ex entity.PlanExercise
		if err = rows.Scan(&ex.ID, &ex.PlanID, &ex.ExerciseID, &ex.Sets, &ex.Reps, &ex.Weight, &ex.Comments); err != nil {
			return nil, dbError(ctx, "unmarshalling plan exercise error", err)
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(ctx, "unexpected error after scanning", err)
	}
	return exercises, nil
}

func (pr *PlansRepository) Update(ctx context.Context, plan *entity.WorkoutPlan) error {
	row := pick(ctx, pr.conn).QueryRow(ctx, `UPDATE workout_plans SET plan_name = $1, description = $2, updated_at = NOW() WHERE plan_id = $3 AND user_id = $4 RETURNING created_at, updated_at;`,
		plan.Name, plan.Description, plan.ID, plan.UserID,
	)
	if err := row.Scan(&plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrPlanNotFound
		}
		return dbError(ctx, "updating plan error", err)
	}
	return nil
}

func (pr *PlansRepository) DeleteExercises(ctx context.Context, planID uuid.UUID) error {
	_, err := pick(ctx, pr.conn).Exec(ctx, `DELETE FROM workout_plan_exercises WHERE plan_id = $1;`, planID)
	if err != nil {
		return dbError(ctx, "deleting plan exercises error", err)
	}
	return nil
}

// Delete removes the plan. Its exercises and scheduled workouts are removed by cascade.
func (pr *PlansRepository) Delete(ctx context.Context, planID, userID uuid.UUID) error {
	ct, err := pick(ctx, pr.conn).Exec(ctx, `DELETE FROM workout_plans WHERE plan_id = $1 AND user_id = $2;`, planID, userID)
	if err != nil {
		return dbError(ctx, "deleting plan error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}
