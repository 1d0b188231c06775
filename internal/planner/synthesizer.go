package planner

import (
	"time"

	"alcyxob/peakplan/internal/domain"
)

// TaperVolumeFactor scales endurance volumes down during taper weeks
// while intensity holds.
const TaperVolumeFactor = 0.7

// WeekParams carries everything a strategy needs to synthesize one week.
type WeekParams struct {
	Plan      *domain.TrainingPlan
	Week      int // 1-based
	Phase     domain.Phase
	WeekStart time.Time
}

// Synthesizer produces exactly one workout descriptor per day of the
// week, rest days included as explicit zero-effort entries. One strategy
// exists per goal category family; selection is by category enum, not
// inheritance.
type Synthesizer interface {
	SynthesizeWeek(p WeekParams) ([]Descriptor, error)
}

// ForCategory selects the synthesis strategy for a goal category.
// Unknown categories fall back to general fitness.
func ForCategory(category domain.GoalCategory) Synthesizer {
	switch category {
	case domain.CategoryTriathlon:
		return triathlonSynthesizer{}
	case domain.CategoryMarathon, domain.CategoryHalfMarathon, domain.CategoryTenK, domain.CategoryFiveK:
		return runningSynthesizer{}
	case domain.CategoryCycling, domain.CategoryCenturyRide:
		return cyclingSynthesizer{}
	case domain.CategoryStrength:
		return strengthSynthesizer{}
	case domain.CategoryWeightLoss, domain.CategoryMuscleGain:
		return weightManagementSynthesizer{}
	default:
		return generalFitnessSynthesizer{}
	}
}

// phaseIntensity is the default working intensity for a phase.
func phaseIntensity(phase domain.Phase) domain.Intensity {
	switch phase {
	case domain.PhaseBuild:
		return domain.IntensityModerate
	case domain.PhasePeak:
		return domain.IntensityHard
	default: // base and taper train easy
		return domain.IntensityEasy
	}
}

// ramp computes a bounded linear progression: base + week*increment,
// capped.
func ramp(base, increment, cap float64, week int) float64 {
	v := base + float64(week)*increment
	if v > cap {
		v = cap
	}
	return v
}

// taperScale applies the taper volume reduction when the phase calls
// for it.
func taperScale(v float64, phase domain.Phase) float64 {
	if phase == domain.PhaseTaper {
		return v * TaperVolumeFactor
	}
	return v
}

// weeklyFocus rotates a short per-phase focus label across weeks.
var phaseFocuses = map[domain.Phase][]string{
	domain.PhaseBase:  {"Building aerobic base", "Establishing routine", "Technique focus"},
	domain.PhaseBuild: {"Increasing intensity", "Race pace practice", "Building strength"},
	domain.PhasePeak:  {"High intensity training", "Race simulation", "Peak fitness"},
	domain.PhaseTaper: {"Recovery and preparation", "Maintaining fitness", "Race readiness"},
}

// WeeklyFocus returns the rotating focus label for a week within a phase.
func WeeklyFocus(phase domain.Phase, week int) string {
	focuses, ok := phaseFocuses[phase]
	if !ok || len(focuses) == 0 {
		return ""
	}
	return focuses[(week-1)%len(focuses)]
}
