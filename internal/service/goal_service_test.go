package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/peakplan/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newGoalService() (*fakeGoalRepo, GoalService) {
	repo := newFakeGoalRepo()
	return repo, NewGoalService(repo)
}

func TestCreateGoalValidation(t *testing.T) {
	_, svc := newGoalService()
	athleteID := primitive.NewObjectID()

	_, err := svc.CreateGoal(context.Background(), athleteID, GoalInput{Category: domain.CategoryMarathon})
	assert.Error(t, err, "empty title rejected")

	_, err = svc.CreateGoal(context.Background(), athleteID, GoalInput{Title: "Ironman", Category: "ultramarathon"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	past := time.Now().AddDate(0, 0, -1)
	_, err = svc.CreateGoal(context.Background(), athleteID, GoalInput{Title: "Yesterday 5K", Category: domain.CategoryFiveK, EventDate: &past})
	assert.ErrorIs(t, err, ErrEventDateInThePast)

	event := time.Now().AddDate(0, 2, 0)
	goal, err := svc.CreateGoal(context.Background(), athleteID, GoalInput{Title: "City Marathon", Category: domain.CategoryMarathon, EventDate: &event})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusPlanning, goal.Status)
	assert.False(t, goal.ID.IsZero())
}

func TestGetGoalHidesOtherAthletes(t *testing.T) {
	_, svc := newGoalService()
	owner := primitive.NewObjectID()

	goal, err := svc.CreateGoal(context.Background(), owner, GoalInput{Title: "Century", Category: domain.CategoryCenturyRide})
	require.NoError(t, err)

	_, err = svc.GetGoal(context.Background(), goal.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrGoalNotFound)

	got, err := svc.GetGoal(context.Background(), goal.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, got.ID)
}

func TestUpdateStatusRefusesActivation(t *testing.T) {
	repo, svc := newGoalService()
	athleteID := primitive.NewObjectID()

	goal, err := svc.CreateGoal(context.Background(), athleteID, GoalInput{Title: "Strength Block", Category: domain.CategoryStrength})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), goal.ID, athleteID, domain.GoalStatusActive)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), goal.ID, athleteID, "archived")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := svc.UpdateStatus(context.Background(), goal.ID, athleteID, domain.GoalStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusCancelled, updated.Status)
	assert.Equal(t, domain.GoalStatusCancelled, repo.goals[goal.ID].Status)
}

func TestDeleteGoalEnforcesOwnership(t *testing.T) {
	repo, svc := newGoalService()
	athleteID := primitive.NewObjectID()

	goal, err := svc.CreateGoal(context.Background(), athleteID, GoalInput{Title: "Shed Pounds", Category: domain.CategoryWeightLoss})
	require.NoError(t, err)

	err = svc.DeleteGoal(context.Background(), goal.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.Contains(t, repo.goals, goal.ID)

	require.NoError(t, svc.DeleteGoal(context.Background(), goal.ID, athleteID))
	assert.NotContains(t, repo.goals, goal.ID)
}
