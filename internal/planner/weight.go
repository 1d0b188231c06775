package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// weightManagementSynthesizer builds a mixed strength-and-cardio week for
// weight loss and muscle gain goals. Cardio distance ramps gently.
type weightManagementSynthesizer struct{}

const (
	wmRunBase, wmRunStep, wmRunCap = 2.0, 0.15, 5.0
)

func (weightManagementSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	cardio := taperScale(ramp(wmRunBase, wmRunStep, wmRunCap, p.Week), p.Phase)

	strength := func(day int, region string) Descriptor {
		return Descriptor{
			Name:            region,
			Modality:        domain.ModalityStrength,
			Intensity:       domain.IntensityModerate,
			Phase:           p.Phase,
			DayOfWeek:       day,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, day),
			DurationMinutes: 45,
			Description:     fmt.Sprintf("Week %d - %s", p.Week, region),
			Instructions:    "Keep rest periods short to hold heart rate up",
		}
	}
	run := func(day int, name string, dist float64) Descriptor {
		return Descriptor{
			Name:            fmt.Sprintf("%s - %.1f miles", name, dist),
			Modality:        domain.ModalityRun,
			Intensity:       domain.IntensityModerate,
			Phase:           p.Phase,
			DayOfWeek:       day,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, day),
			DurationMinutes: int(dist * 11),
			DistanceMiles:   milesPtr(dist),
			Description:     fmt.Sprintf("Week %d - %s", p.Week, name),
			Instructions:    "Steady effort you could hold while talking",
		}
	}

	week := []Descriptor{
		strength(0, "Upper Body Strength"),
		run(1, "Cardio Run", cardio),
		strength(2, "Lower Body Strength"),
		{
			Name:            "Cross Training",
			Modality:        domain.ModalityCrossTraining,
			Intensity:       domain.IntensityEasy,
			Phase:           p.Phase,
			DayOfWeek:       3,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 3),
			DurationMinutes: 30,
			Description:     "Low impact activity",
			Instructions:    "Swim, row, or brisk walk",
		},
		strength(4, "Full Body Strength"),
		run(5, "Long Cardio", cardio*1.4),
		restDay(6, p.WeekStart, p.Phase),
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}
