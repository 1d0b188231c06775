package repository

import (
	"alcyxob/peakplan/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound      = RepositoryError("not found")
	ErrUpdateFailed  = RepositoryError("update failed")
	ErrDeleteFailed  = RepositoryError("delete failed")
	ErrDuplicateWeek = RepositoryError("week already generated for plan")
	ErrDuplicateLog  = RepositoryError("workout already completed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with athlete accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// GoalRepository defines the interface for interacting with goal data.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Goal, error)
	// GetActiveByAthleteID returns the athlete's single active goal, or
	// ErrNotFound when none is active.
	GetActiveByAthleteID(ctx context.Context, athleteID primitive.ObjectID) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id, athleteID primitive.ObjectID) error
}

// TrainingPlanRepository defines the interface for interacting with
// training plan data.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]domain.TrainingPlan, error)
	Update(ctx context.Context, plan *domain.TrainingPlan) error
}

// WorkoutRepository defines the interface for interacting with scheduled
// workouts. Weeks are written as atomic 7-workout sets.
type WorkoutRepository interface {
	// CreateWeek inserts a full week set. Either all 7 workouts are
	// persisted or none; a week number already present for the plan
	// yields ErrDuplicateWeek.
	CreateWeek(ctx context.Context, workouts []*domain.Workout) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.Workout, error)
	GetByPlanAndWeek(ctx context.Context, planID primitive.ObjectID, week int) ([]domain.Workout, error)
	// MaxWeekNumber returns the highest generated week for a plan, 0 when
	// no workouts exist yet.
	MaxWeekNumber(ctx context.Context, planID primitive.ObjectID) (int, error)
}

// WorkoutLogRepository defines the interface for interacting with
// completion records.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	// GetByWorkoutID returns the single log referencing a scheduled
	// workout, or ErrNotFound.
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutLog, error)
	// ListForAthleteSince returns up to limit logs completed on or after
	// since, most recent first.
	ListForAthleteSince(ctx context.Context, athleteID primitive.ObjectID, since time.Time, limit int) ([]domain.WorkoutLog, error)
	ListByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]domain.WorkoutLog, error)
}
