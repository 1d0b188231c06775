package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalCategory classifies the athlete's objective and selects the
// workout synthesis strategy.
type GoalCategory string

const (
	CategoryTriathlon        GoalCategory = "triathlon"
	CategoryMarathon         GoalCategory = "marathon"
	CategoryHalfMarathon     GoalCategory = "half_marathon"
	CategoryTenK             GoalCategory = "10k"
	CategoryFiveK            GoalCategory = "5k"
	CategoryCycling          GoalCategory = "cycling"
	CategoryCenturyRide      GoalCategory = "century_ride"
	CategoryStrength         GoalCategory = "strength_training"
	CategoryWeightLoss       GoalCategory = "weight_loss"
	CategoryMuscleGain       GoalCategory = "muscle_gain"
	CategoryGeneralFitness   GoalCategory = "general_fitness"
)

// IsValid reports whether the category is one of the known values.
func (c GoalCategory) IsValid() bool {
	switch c {
	case CategoryTriathlon, CategoryMarathon, CategoryHalfMarathon, CategoryTenK,
		CategoryFiveK, CategoryCycling, CategoryCenturyRide, CategoryStrength,
		CategoryWeightLoss, CategoryMuscleGain, CategoryGeneralFitness:
		return true
	}
	return false
}

// GoalStatus type for goal lifecycle
type GoalStatus string

const (
	GoalStatusPlanning  GoalStatus = "planning"
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Goal represents an athlete's training objective. At most one goal per
// athlete may be active at a time; activating a goal pauses any other
// active goal for that athlete.
type Goal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID primitive.ObjectID `bson:"athleteId" json:"athleteId"`

	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Category    GoalCategory `bson:"category" json:"category"`
	Status      GoalStatus   `bson:"status" json:"status"`

	// Event details (optional for open-ended goals)
	EventDate     *time.Time `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	EventLocation string     `bson:"eventLocation,omitempty" json:"eventLocation,omitempty"`

	// Plan phase structure, filled in when the goal is activated.
	TotalWeeks   int    `bson:"totalWeeks,omitempty" json:"totalWeeks,omitempty"`
	CurrentWeek  int    `bson:"currentWeek" json:"currentWeek"`
	CurrentPhase string `bson:"currentPhase,omitempty" json:"currentPhase,omitempty"`
	BaseWeeks    int    `bson:"baseWeeks,omitempty" json:"baseWeeks,omitempty"`
	BuildWeeks   int    `bson:"buildWeeks,omitempty" json:"buildWeeks,omitempty"`
	PeakWeeks    int    `bson:"peakWeeks,omitempty" json:"peakWeeks,omitempty"`
	TaperWeeks   int    `bson:"taperWeeks,omitempty" json:"taperWeeks,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DaysUntilEvent returns the number of days until the event date,
// or 0 when no event date is set or the event has passed.
func (g *Goal) DaysUntilEvent(now time.Time) int {
	if g.EventDate == nil {
		return 0
	}
	days := int(g.EventDate.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// PlanStartDate is the date week 1 began. Plans start when the goal is
// created (activation reuses the creation timestamp so the current week
// stays stable across pause/resume).
func (g *Goal) PlanStartDate() time.Time {
	return g.CreatedAt
}

// WeekForTime computes the 1-based plan week containing t, clamped to
// [1, TotalWeeks].
func (g *Goal) WeekForTime(t time.Time) int {
	week := int(t.Sub(g.PlanStartDate()).Hours()/(24*7)) + 1
	if week < 1 {
		week = 1
	}
	if g.TotalWeeks > 0 && week > g.TotalWeeks {
		week = g.TotalWeeks
	}
	return week
}
