package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/pkg/entity"
)

// PlanService owns workout plans and assembles their denormalized view.
// Every multi-statement operation runs in one transaction.
type PlanService struct {
	tx      repository.TransactorI
	plans   repository.PlansRepositoryI
	catalog repository.ExercisesRepositoryI
}

func NewPlanService(tx repository.TransactorI, plans repository.PlansRepositoryI, catalog repository.ExercisesRepositoryI) *PlanService {
	if tx == nil || plans == nil || catalog == nil {
		log.Fatal("on plan service provided nil dependencies")
	}
	return &PlanService{
		tx:      tx,
		plans:   plans,
		catalog: catalog,
	}
}

func wrapPlanErr(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrPlanNotFound),
		errors.Is(err, errorvalues.ErrExerciseNotFound),
		errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrUserNotFound):
		return err
	}
	return fmt.Errorf("plans repository error: %w", err)
}

func (ps *PlanService) CreatePlan(ctx context.Context, userID uuid.UUID, req *PlanRequest) (*entity.PlanDetails, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var details *entity.PlanDetails
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		plan := entity.WorkoutPlan{
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
		}
		if err := ps.plans.Create(ctx, &plan); err != nil {
			return wrapPlanErr(err)
		}
		if err := ps.addExercises(ctx, plan.ID, req.Exercises); err != nil {
			return err
		}
		var err error
		details, err = ps.GetPlanWithExercises(ctx, plan.ID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (ps *PlanService) addExercises(ctx context.Context, planID uuid.UUID, exercises []PlanExerciseRequest) error {
	for _, req := range exercises {
		ex := entity.PlanExercise{
			PlanID:     planID,
			ExerciseID: req.ExerciseID,
			Sets:       req.Sets,
			Reps:       req.Reps,
			Weight:     req.Weight,
			Comments:   req.Comments,
		}
		if err := ps.plans.AddExercise(ctx, &ex); err != nil {
			return wrapPlanErr(err)
		}
	}
	return nil
}

// GetPlanWithExercises reads the plan, its exercises and their catalog
// entries. Any failure fails the whole call.
func (ps *PlanService) GetPlanWithExercises(ctx context.Context, planID, userID uuid.UUID) (*entity.PlanDetails, error) {
	var details *entity.PlanDetails
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		plan, err := ps.plans.GetByID(ctx, planID, userID)
		if err != nil {
			return wrapPlanErr(err)
		}
		exercises, err := ps.plans.ListExercises(ctx, planID)
		if err != nil {
			return wrapPlanErr(err)
		}
		for i := range exercises {
			ex, err := ps.catalog.GetByID(ctx, exercises[i].ExerciseID)
			if err != nil {
				return fmt.Errorf("enriching plan exercise %d: %w", exercises[i].ExerciseID, err)
			}
			exercises[i].ExerciseName = ex.Name
			exercises[i].Description = ex.Description
			exercises[i].Category = ex.Category
		}
		details = &entity.PlanDetails{
			WorkoutPlan: *plan,
			Exercises:   exercises,
			Metadata:    entity.PlanMetadata{ExerciseCount: len(exercises)},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (ps *PlanService) ListPlans(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.PlanDetails, error) {
	var result []*entity.PlanDetails
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		plans, err := ps.plans.ListByUser(ctx, userID, pagination.Limit, pagination.Offset)
		if err != nil {
			return wrapPlanErr(err)
		}
		if len(plans) == 0 {
			return errorvalues.ErrPlanNotFound
		}
		result = make([]*entity.PlanDetails, 0, len(plans))
		for _, p := range plans {
			details, err := ps.GetPlanWithExercises(ctx, p.ID, userID)
			if err != nil {
				return err
			}
			result = append(result, details)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ps *PlanService) UpdatePlan(ctx context.Context, planID, userID uuid.UUID, req *PlanRequest) (*entity.PlanDetails, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var details *entity.PlanDetails
	err := ps.tx.WithinTx(ctx, func(ctx context.Context) error {
		plan := entity.WorkoutPlan{
			ID:          planID,
			UserID:      userID,
			Name:        req.Name,
			Description: req.Description,
		}
		if err := ps.plans.Update(ctx, &plan); err != nil {
			return wrapPlanErr(err)
		}
		if err := ps.plans.DeleteExercises(ctx, planID); err != nil {
			return wrapPlanErr(err)
		}
		if err := ps.addExercises(ctx, planID, req.Exercises); err != nil {
			return err
		}
		var err error
		details, err = ps.GetPlanWithExercises(ctx, planID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (ps *PlanService) DeletePlan(ctx context.Context, planID, userID uuid.UUID) error {
	if err := ps.plans.Delete(ctx, planID, userID); err != nil {
		return wrapPlanErr(err)
	}
	return nil
}
