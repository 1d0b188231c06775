package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// strengthSynthesizer builds a strength-focused week: four lifting
// sessions split by body region, one recovery cardio session, two rest
// days. Session length grows with the plan, bounded.
type strengthSynthesizer struct{}

const (
	liftBase, liftStep, liftCap = 45.0, 1.0, 75.0
)

func (strengthSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	duration := int(taperScale(ramp(liftBase, liftStep, liftCap, p.Week), p.Phase))

	lift := func(day int, region string) Descriptor {
		return Descriptor{
			Name:            fmt.Sprintf("Strength - %s", region),
			Modality:        domain.ModalityStrength,
			Intensity:       phaseIntensity(p.Phase),
			Phase:           p.Phase,
			DayOfWeek:       day,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, day),
			DurationMinutes: duration,
			Description:     fmt.Sprintf("Week %d %s session", p.Week, region),
			Instructions:    "Compound lifts first, accessories after. Leave 1-2 reps in reserve.",
		}
	}

	week := []Descriptor{
		lift(0, "Upper Body"),
		lift(1, "Lower Body"),
		restDay(2, p.WeekStart, p.Phase),
		lift(3, "Full Body"),
		{
			Name:            "Recovery Cardio",
			Modality:        domain.ModalityRun,
			Intensity:       domain.IntensityRecovery,
			Phase:           p.Phase,
			DayOfWeek:       4,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 4),
			DurationMinutes: 20,
			Description:     "Easy aerobic work between lifting days",
			Instructions:    "Conversational pace only",
		},
		lift(5, "Upper Body"),
		restDay(6, p.WeekStart, p.Phase),
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}
