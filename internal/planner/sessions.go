package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// SessionMix is the target weekly session count per modality.
type SessionMix struct {
	Swim     int
	Bike     int
	Run      int
	Strength int
	// Narrative description of the plan approach, surfaced on the
	// generated TrainingPlan.
	Description string
}

// baseMixes maps goal category to the unscaled weekly session counts
// (swim, bike, run, strength).
var baseMixes = map[domain.GoalCategory][4]int{
	domain.CategoryTriathlon:      {2, 2, 3, 1},
	domain.CategoryMarathon:       {0, 1, 4, 2},
	domain.CategoryHalfMarathon:   {0, 1, 4, 2},
	domain.CategoryTenK:           {0, 0, 4, 2},
	domain.CategoryFiveK:          {0, 0, 3, 2},
	domain.CategoryCycling:        {0, 4, 0, 2},
	domain.CategoryCenturyRide:    {0, 4, 0, 2},
	domain.CategoryStrength:       {0, 0, 1, 4},
	domain.CategoryWeightLoss:     {0, 0, 2, 3},
	domain.CategoryMuscleGain:     {0, 0, 2, 3},
	domain.CategoryGeneralFitness: {0, 1, 2, 2},
}

// experienceMultiplier scales endurance-modality session counts.
func experienceMultiplier(level domain.FitnessLevel) float64 {
	switch level {
	case domain.LevelBeginner:
		return 0.8
	case domain.LevelAdvanced:
		return 1.2
	case domain.LevelExpert:
		return 1.3
	default:
		return 1.0
	}
}

// PlanSessionMix derives weekly session targets from the goal category
// and athlete profile. Endurance counts (swim/bike/run) are scaled by the
// experience multiplier and floored at 1 wherever the base count is
// nonzero; strength counts are not scaled.
func PlanSessionMix(category domain.GoalCategory, athlete *domain.User) SessionMix {
	base, ok := baseMixes[category]
	if !ok {
		base = baseMixes[domain.CategoryGeneralFitness]
	}

	mult := experienceMultiplier(athlete.Level())
	scale := func(n int) int {
		if n == 0 {
			return 0
		}
		scaled := int(float64(n) * mult)
		if scaled < 1 {
			scaled = 1
		}
		return scaled
	}

	mix := SessionMix{
		Swim:     scale(base[0]),
		Bike:     scale(base[1]),
		Run:      scale(base[2]),
		Strength: base[3],
	}
	mix.Description = describeMix(category, athlete, mix)
	return mix
}

func describeMix(category domain.GoalCategory, athlete *domain.User, mix SessionMix) string {
	desc := fmt.Sprintf("Progressive %s training for a %s level athlete: %d swim, %d bike, %d run and %d strength sessions per week, adjusted weekly from your feedback and energy levels.",
		category, athlete.Level(), mix.Swim, mix.Bike, mix.Run, mix.Strength)
	if bmi := athlete.BMI(); bmi > 0 {
		desc += fmt.Sprintf(" Volumes account for your profile (BMI %.1f).", bmi)
	}
	return desc
}
