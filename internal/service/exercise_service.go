package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/pkg/entity"
)

type ExerciseService struct {
	catalog repository.ExercisesRepositoryI
}

func NewExerciseService(catalog repository.ExercisesRepositoryI) *ExerciseService {
	if catalog == nil {
		log.Fatal("provided nil exercise catalog")
	}
	return &ExerciseService{catalog: catalog}
}

func (es *ExerciseService) ListExercises(ctx context.Context) ([]entity.Exercise, error) {
	exercises, err := es.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exercise catalog error: %w", err)
	}
	return exercises, nil
}

func (es *ExerciseService) GetExercise(ctx context.Context, id int) (*entity.Exercise, error) {
	ex, err := es.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("exercise catalog error: %w", err)
	}
	return ex, nil
}
