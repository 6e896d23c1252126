package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/internal/repository/mocks"
	"github.com/limbo/workout/internal/service"
	"github.com/limbo/workout/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legDay() *service.PlanRequest {
	return &service.PlanRequest{
		Name: "Leg Day",
		Exercises: []service.PlanExerciseRequest{
			{ExerciseID: 2, Sets: 3, Reps: 12},
		},
	}
}

func newPlanService() (*service.PlanService, *plansFake) {
	catalog := newCatalogFake()
	plans := newPlansFake(catalog)
	return service.NewPlanService(passTx{}, plans, catalog), plans
}

func TestCreatePlan(t *testing.T) {
	s, plans := newPlanService()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("enriched with catalog", func(t *testing.T) {
		details, err := s.CreatePlan(ctx, uid, legDay())
		require.NoError(t, err)
		assert.Equal(t, "Leg Day", details.Name)
		assert.Equal(t, uid, details.UserID)
		require.Len(t, details.Exercises, 1)
		ex := details.Exercises[0]
		assert.Equal(t, "Squat", ex.ExerciseName)
		assert.Equal(t, "strength", ex.Category)
		assert.Equal(t, 3, ex.Sets)
		assert.Equal(t, 12, ex.Reps)
		assert.Equal(t, 1, details.Metadata.ExerciseCount)
	})
	t.Run("unknown exercise", func(t *testing.T) {
		req := legDay()
		req.Exercises = append(req.Exercises, service.PlanExerciseRequest{ExerciseID: 999, Sets: 1, Reps: 1})
		_, err := s.CreatePlan(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			Desc string
			Req  *service.PlanRequest
		}{
			{Desc: "empty name", Req: &service.PlanRequest{}},
			{Desc: "negative sets", Req: &service.PlanRequest{Name: "x", Exercises: []service.PlanExerciseRequest{{ExerciseID: 2, Sets: -1}}}},
			{Desc: "zero exercise id", Req: &service.PlanRequest{Name: "x", Exercises: []service.PlanExerciseRequest{{ExerciseID: 0}}}},
		}
		for _, tc := range testCases {
			t.Run(tc.Desc, func(t *testing.T) {
				_, err := s.CreatePlan(ctx, uid, tc.Req)
				assert.ErrorIs(t, err, errorvalues.ErrValidation)
			})
		}
	})
	t.Run("exercise count matches list", func(t *testing.T) {
		req := &service.PlanRequest{Name: "Full Body", Exercises: []service.PlanExerciseRequest{
			{ExerciseID: 1, Sets: 3, Reps: 15},
			{ExerciseID: 2, Sets: 4, Reps: 8},
			{ExerciseID: 3},
		}}
		created, err := s.CreatePlan(ctx, uid, req)
		require.NoError(t, err)
		details, err := s.GetPlanWithExercises(ctx, created.ID, uid)
		require.NoError(t, err)
		assert.Len(t, details.Exercises, details.Metadata.ExerciseCount)
		assert.Equal(t, []int{1, 2, 3}, []int{details.Exercises[0].ExerciseID, details.Exercises[1].ExerciseID, details.Exercises[2].ExerciseID})
		assert.Len(t, plans.exercises[created.ID], 3)
	})
}

func TestGetPlanWithExercises(t *testing.T) {
	s, _ := newPlanService()
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()
	created, err := s.CreatePlan(ctx, owner, legDay())
	require.NoError(t, err)

	t.Run("owner", func(t *testing.T) {
		details, err := s.GetPlanWithExercises(ctx, created.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, created.ID, details.ID)
	})
	t.Run("another user", func(t *testing.T) {
		_, err := s.GetPlanWithExercises(ctx, created.ID, stranger)
		assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
	})
	t.Run("unknown plan", func(t *testing.T) {
		_, err := s.GetPlanWithExercises(ctx, uuid.New(), owner)
		assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
	})
}

func TestUpdatePlanReplacesExercises(t *testing.T) {
	s, _ := newPlanService()
	ctx := context.Background()
	uid := uuid.New()
	created, err := s.CreatePlan(ctx, uid, &service.PlanRequest{Name: "Leg Day", Exercises: []service.PlanExerciseRequest{
		{ExerciseID: 2, Sets: 3, Reps: 12},
		{ExerciseID: 3, Sets: 1, Reps: 1},
	}})
	require.NoError(t, err)
	require.Equal(t, 2, created.Metadata.ExerciseCount)

	desc := "squats only"
	updated, err := s.UpdatePlan(ctx, created.ID, uid, &service.PlanRequest{
		Name:        "Leg Day v2",
		Description: &desc,
		Exercises:   []service.PlanExerciseRequest{{ExerciseID: 2, Sets: 5, Reps: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Leg Day v2", updated.Name)
	assert.Equal(t, desc, *updated.Description)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, 2, updated.Exercises[0].ExerciseID)
	assert.Equal(t, 5, updated.Exercises[0].Sets)
	assert.Equal(t, 1, updated.Metadata.ExerciseCount)

	t.Run("another user", func(t *testing.T) {
		_, err := s.UpdatePlan(ctx, created.ID, uuid.New(), legDay())
		assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
	})
}

func TestListAndDeletePlans(t *testing.T) {
	s, _ := newPlanService()
	ctx := context.Background()
	uid := uuid.New()

	_, err := s.ListPlans(ctx, uid, service.PaginationOpts{Limit: 10})
	assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)

	created, err := s.CreatePlan(ctx, uid, legDay())
	require.NoError(t, err)
	plans, err := s.ListPlans(ctx, uid, service.PaginationOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Squat", plans[0].Exercises[0].ExerciseName)

	assert.ErrorIs(t, s.DeletePlan(ctx, created.ID, uuid.New()), errorvalues.ErrPlanNotFound)
	assert.NoError(t, s.DeletePlan(ctx, created.ID, uid))
	_, err = s.GetPlanWithExercises(ctx, created.ID, uid)
	assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
}

func TestPlanServiceFailAtomic(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTransactorI(ctrl)
	plans := mocks.NewMockPlansRepositoryI(ctrl)
	catalog := mocks.NewMockExercisesRepositoryI(ctrl)
	s := service.NewPlanService(tx, plans, catalog)
	ctx := context.Background()
	planID, uid := uuid.New(), uuid.New()
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}).AnyTimes()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "exercises read fails",
			Error: errDB,
			MockPrepFunc: func() {
				plans.EXPECT().GetByID(gomock.Any(), planID, uid).Return(&entity.WorkoutPlan{ID: planID, UserID: uid}, nil)
				plans.EXPECT().ListExercises(gomock.Any(), planID).Return(nil, errDB)
			},
		},
		{
			Desc:  "catalog lookup fails",
			Error: errDB,
			MockPrepFunc: func() {
				plans.EXPECT().GetByID(gomock.Any(), planID, uid).Return(&entity.WorkoutPlan{ID: planID, UserID: uid}, nil)
				plans.EXPECT().ListExercises(gomock.Any(), planID).Return([]entity.PlanExercise{
					{PlanID: planID, ExerciseID: 2},
					{PlanID: planID, ExerciseID: 3},
				}, nil)
				catalog.EXPECT().GetByID(gomock.Any(), 2).Return(&entity.Exercise{ID: 2, Name: "Squat"}, nil)
				catalog.EXPECT().GetByID(gomock.Any(), 3).Return(nil, errDB)
			},
		},
		{
			Desc:  "plan read fails",
			Error: errDB,
			MockPrepFunc: func() {
				plans.EXPECT().GetByID(gomock.Any(), planID, uid).Return(nil, errDB)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			details, err := s.GetPlanWithExercises(ctx, planID, uid)
			assert.ErrorIs(t, err, tc.Error)
			assert.Nil(t, details)
		})
	}
}
