package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrInvalidCategory    = errors.New("unknown goal category")
	ErrInvalidTransition  = errors.New("invalid goal status transition")
	ErrGoalAlreadyActive  = errors.New("goal is already active")
	ErrEventDateInThePast = errors.New("event date cannot be in the past")
)

// GoalInput carries the caller-supplied fields for creating a goal.
type GoalInput struct {
	Title         string
	Description   string
	Category      domain.GoalCategory
	EventDate     *time.Time
	EventLocation string
}

// GoalUpdate carries optional fields for editing a goal before it is
// activated. Nil means leave the stored value untouched.
type GoalUpdate struct {
	Title         *string
	Description   *string
	EventDate     *time.Time
	EventLocation *string
}

// GoalService manages goal CRUD and lifecycle transitions other than
// activation. Activation belongs to the TrainingService because it also
// generates the plan.
type GoalService interface {
	CreateGoal(ctx context.Context, athleteID primitive.ObjectID, input GoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.Goal, error)
	ListGoals(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Goal, error)
	GetActiveGoal(ctx context.Context, athleteID primitive.ObjectID) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID, athleteID primitive.ObjectID, update GoalUpdate) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) error
	// UpdateStatus handles pause/complete/cancel. Activating goes through
	// TrainingService.ActivateGoal.
	UpdateStatus(ctx context.Context, goalID, athleteID primitive.ObjectID, status domain.GoalStatus) (*domain.Goal, error)
}

type goalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(goalRepo repository.GoalRepository) GoalService {
	return &goalService{goalRepo: goalRepo}
}

// CreateGoal validates and persists a new goal in planning status.
func (s *goalService) CreateGoal(ctx context.Context, athleteID primitive.ObjectID, input GoalInput) (*domain.Goal, error) {
	if input.Title == "" {
		return nil, errors.New("goal title cannot be empty")
	}
	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if input.EventDate != nil && input.EventDate.Before(time.Now()) {
		return nil, ErrEventDateInThePast
	}

	goal := &domain.Goal{
		AthleteID:     athleteID,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Status:        domain.GoalStatusPlanning,
		EventDate:     input.EventDate,
		EventLocation: input.EventLocation,
	}

	goalID, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = goalID
	return goal, nil
}

// GetGoal fetches a goal owned by the athlete. Another athlete's goal is
// indistinguishable from a missing one.
func (s *goalService) GetGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if goal.AthleteID != athleteID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, athleteID primitive.ObjectID) ([]domain.Goal, error) {
	return s.goalRepo.GetByAthleteID(ctx, athleteID)
}

func (s *goalService) GetActiveGoal(ctx context.Context, athleteID primitive.ObjectID) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetActiveByAthleteID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// UpdateGoal edits a goal's descriptive fields.
func (s *goalService) UpdateGoal(ctx context.Context, goalID, athleteID primitive.ObjectID, update GoalUpdate) (*domain.Goal, error) {
	goal, err := s.GetGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != "" {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.EventDate != nil {
		if update.EventDate.Before(time.Now()) {
			return nil, ErrEventDateInThePast
		}
		goal.EventDate = update.EventDate
	}
	if update.EventLocation != nil {
		goal.EventLocation = *update.EventLocation
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes a goal owned by the athlete.
func (s *goalService) DeleteGoal(ctx context.Context, goalID, athleteID primitive.ObjectID) error {
	err := s.goalRepo.Delete(ctx, goalID, athleteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}

// UpdateStatus applies a lifecycle transition. Activation is refused
// here: it must run through the training service so a plan exists before
// the goal goes active.
func (s *goalService) UpdateStatus(ctx context.Context, goalID, athleteID primitive.ObjectID, status domain.GoalStatus) (*domain.Goal, error) {
	if status == domain.GoalStatusActive {
		return nil, ErrInvalidTransition
	}
	switch status {
	case domain.GoalStatusPaused, domain.GoalStatusCompleted, domain.GoalStatusCancelled:
	default:
		return nil, ErrInvalidTransition
	}

	goal, err := s.GetGoal(ctx, goalID, athleteID)
	if err != nil {
		return nil, err
	}

	goal.Status = status
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
