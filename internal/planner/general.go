package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// generalFitnessSynthesizer builds a balanced week for open-ended fitness
// goals and is the fallback for unknown categories.
type generalFitnessSynthesizer struct{}

const (
	gfRunBase, gfRunStep, gfRunCap = 2.0, 0.1, 4.0
)

func (generalFitnessSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	intensity := phaseIntensity(p.Phase)
	dist := taperScale(ramp(gfRunBase, gfRunStep, gfRunCap, p.Week), p.Phase)

	slot := func(day int, name string, modality domain.Modality, tier domain.Intensity, minutes int, miles *float64) Descriptor {
		return Descriptor{
			Name:            name,
			Modality:        modality,
			Intensity:       tier,
			Phase:           p.Phase,
			DayOfWeek:       day,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, day),
			DurationMinutes: minutes,
			DistanceMiles:   miles,
			Description:     fmt.Sprintf("Week %d general fitness", p.Week),
		}
	}

	week := []Descriptor{
		slot(0, "Strength Training", domain.ModalityStrength, intensity, 45, nil),
		slot(1, fmt.Sprintf("Cardio Run - %.1f miles", dist), domain.ModalityRun, intensity, int(dist*10), milesPtr(dist)),
		slot(2, "Upper Body Strength", domain.ModalityStrength, intensity, 45, nil),
		restDay(3, p.WeekStart, p.Phase),
		slot(4, "Lower Body Strength", domain.ModalityStrength, intensity, 45, nil),
		slot(5, "Cardio Workout", domain.ModalityCrossTraining, intensity, 35, nil),
		restDay(6, p.WeekStart, p.Phase),
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}
