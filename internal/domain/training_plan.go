package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingPlan is the generated plan for a Goal. Created once at goal
// activation; its phase week counts always equal the Goal's.
type TrainingPlan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoalID primitive.ObjectID `bson:"goalId" json:"goalId"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	TotalWeeks int `bson:"totalWeeks" json:"totalWeeks"`
	BaseWeeks  int `bson:"baseWeeks" json:"baseWeeks"`
	BuildWeeks int `bson:"buildWeeks" json:"buildWeeks"`
	PeakWeeks  int `bson:"peakWeeks" json:"peakWeeks"`
	TaperWeeks int `bson:"taperWeeks" json:"taperWeeks"`

	// Target weekly session counts per modality.
	WeeklySwimSessions     int `bson:"weeklySwimSessions" json:"weeklySwimSessions"`
	WeeklyBikeSessions     int `bson:"weeklyBikeSessions" json:"weeklyBikeSessions"`
	WeeklyRunSessions      int `bson:"weeklyRunSessions" json:"weeklyRunSessions"`
	WeeklyStrengthSessions int `bson:"weeklyStrengthSessions" json:"weeklyStrengthSessions"`

	IsGenerated bool       `bson:"isGenerated" json:"isGenerated"`
	GeneratedAt *time.Time `bson:"generatedAt,omitempty" json:"generatedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PhaseForWeek maps a 1-based week number onto the plan's phase
// boundaries. Weeks past the peak boundary are taper.
func (p *TrainingPlan) PhaseForWeek(week int) Phase {
	switch {
	case week <= p.BaseWeeks:
		return PhaseBase
	case week <= p.BaseWeeks+p.BuildWeeks:
		return PhaseBuild
	case week <= p.BaseWeeks+p.BuildWeeks+p.PeakWeeks:
		return PhasePeak
	default:
		return PhaseTaper
	}
}
