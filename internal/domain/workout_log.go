package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog records a completed session. A log may reference a scheduled
// Workout or record ad-hoc activity (nil WorkoutID). At most one log
// exists per scheduled workout; duplicate completion attempts are no-ops.
// Logs are immutable after creation.
type WorkoutLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AthleteID primitive.ObjectID  `bson:"athleteId" json:"athleteId"`
	GoalID    primitive.ObjectID  `bson:"goalId" json:"goalId"`
	WorkoutID *primitive.ObjectID `bson:"workoutId,omitempty" json:"workoutId,omitempty"`

	CompletedDate time.Time `bson:"completedDate" json:"completedDate"`

	ActualDurationMinutes int      `bson:"actualDurationMinutes,omitempty" json:"actualDurationMinutes,omitempty"`
	ActualDistanceMiles   *float64 `bson:"actualDistanceMiles,omitempty" json:"actualDistanceMiles,omitempty"`

	// Subjective ratings on a 1-10 scale. Zero means unrated.
	PerceivedExertion int `bson:"perceivedExertion,omitempty" json:"perceivedExertion,omitempty"`
	EnergyLevel       int `bson:"energyLevel,omitempty" json:"energyLevel,omitempty"`
	EnjoymentLevel    int `bson:"enjoymentLevel,omitempty" json:"enjoymentLevel,omitempty"`

	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
	Conditions string `bson:"conditions,omitempty" json:"conditions,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
