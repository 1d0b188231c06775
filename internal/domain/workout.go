package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Modality is the activity type of a workout.
type Modality string

const (
	ModalitySwim          Modality = "swim"
	ModalityBike          Modality = "bike"
	ModalityRun           Modality = "run"
	ModalityStrength      Modality = "strength"
	ModalityRest          Modality = "rest"
	ModalityCrossTraining Modality = "cross_training"
	ModalityBrick         Modality = "brick" // Combined bike + run
)

// IsValid reports whether the modality is one of the known values.
func (m Modality) IsValid() bool {
	switch m {
	case ModalitySwim, ModalityBike, ModalityRun, ModalityStrength,
		ModalityRest, ModalityCrossTraining, ModalityBrick:
		return true
	}
	return false
}

// Intensity is the ordinal effort classification of a workout.
type Intensity string

const (
	IntensityRecovery Intensity = "recovery"
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
	IntensityVeryHard Intensity = "very_hard"
)

// intensityOrder maps each tier to its rank, recovery lowest.
var intensityOrder = map[Intensity]int{
	IntensityRecovery: 0,
	IntensityEasy:     1,
	IntensityModerate: 2,
	IntensityHard:     3,
	IntensityVeryHard: 4,
}

var intensityByRank = []Intensity{
	IntensityRecovery,
	IntensityEasy,
	IntensityModerate,
	IntensityHard,
	IntensityVeryHard,
}

// IsValid reports whether the intensity is one of the known tiers.
func (i Intensity) IsValid() bool {
	_, ok := intensityOrder[i]
	return ok
}

// Rank returns the tier's position in the recovery..very_hard ordering.
// Unknown values rank as easy.
func (i Intensity) Rank() int {
	if r, ok := intensityOrder[i]; ok {
		return r
	}
	return 1
}

// StepDown returns the next easier tier, floored at recovery.
func (i Intensity) StepDown() Intensity {
	r := i.Rank()
	if r == 0 {
		return IntensityRecovery
	}
	return intensityByRank[r-1]
}

// StepUp returns the next harder tier, ceilinged at very_hard.
func (i Intensity) StepUp() Intensity {
	r := i.Rank()
	if r == len(intensityByRank)-1 {
		return IntensityVeryHard
	}
	return intensityByRank[r+1]
}

// Phase is a named stage of periodized training.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
)

// Workout is a single scheduled session within a TrainingPlan. Week sets
// are generated atomically: for a given plan and week number exactly 7
// workouts exist, one per day-of-week 0 (Monday) through 6 (Sunday).
// Completion state is derived, not stored: a workout is completed iff a
// WorkoutLog references it.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainingPlanID primitive.ObjectID `bson:"trainingPlanId" json:"trainingPlanId"`

	Name         string    `bson:"name" json:"name"`
	Modality     Modality  `bson:"modality" json:"modality"`
	Intensity    Intensity `bson:"intensity" json:"intensity"`
	Phase        Phase     `bson:"phase" json:"phase"`

	WeekNumber    int       `bson:"weekNumber" json:"weekNumber"`          // 1-based
	DayOfWeek     int       `bson:"dayOfWeek" json:"dayOfWeek"`            // 0=Monday .. 6=Sunday
	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`

	DurationMinutes int      `bson:"durationMinutes" json:"durationMinutes"`
	DistanceMiles   *float64 `bson:"distanceMiles,omitempty" json:"distanceMiles,omitempty"`
	TotalYards      *int     `bson:"totalYards,omitempty" json:"totalYards,omitempty"`

	WeeklyFocus  string `bson:"weeklyFocus,omitempty" json:"weeklyFocus,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsRest reports whether this is an explicit rest-day entry.
func (w *Workout) IsRest() bool {
	return w.Modality == ModalityRest
}
