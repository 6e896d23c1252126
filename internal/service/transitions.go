package service

import "github.com/limbo/workout/pkg/entity"

// TransitionPolicy decides whether an explicit update may move a scheduled
// workout from one status to another. The sweep does not consult it.
type TransitionPolicy interface {
	Allowed(from, to entity.ScheduleStatus) bool
}

// AllowAnyTransition accepts every change, including completed -> pending.
type AllowAnyTransition struct{}

func (AllowAnyTransition) Allowed(from, to entity.ScheduleStatus) bool {
	return true
}

// StrictTransitions keeps completed and missed workouts from returning to pending.
type StrictTransitions struct{}

func (StrictTransitions) Allowed(from, to entity.ScheduleStatus) bool {
	if from == to {
		return true
	}
	return !(to == entity.StatusPending && (from == entity.StatusCompleted || from == entity.StatusMissed))
}
