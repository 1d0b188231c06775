package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// runningSynthesizer builds a single-modality endurance week for running
// goals: easy run, tempo run, weekend long run, with strength and cross
// training in support.
type runningSynthesizer struct{}

const (
	runBase, runStep, runCap = 3.0, 0.3, 8.0
)

func (runningSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	intensity := phaseIntensity(p.Phase)
	base := taperScale(ramp(runBase, runStep, runCap, p.Week), p.Phase)

	tempo := base * 0.8
	long := base * 1.5

	week := []Descriptor{
		restDay(0, p.WeekStart, p.Phase),
		{
			Name:            fmt.Sprintf("Easy Run - %.1f miles", base),
			Modality:        domain.ModalityRun,
			Intensity:       domain.IntensityEasy,
			Phase:           p.Phase,
			DayOfWeek:       1,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 1),
			DurationMinutes: int(base * 10),
			DistanceMiles:   milesPtr(base),
			Description:     "Comfortable pace, should be able to hold conversation",
			Instructions:    "Focus on form and breathing. Walk if needed.",
		},
		{
			Name:            "Strength Training",
			Modality:        domain.ModalityStrength,
			Intensity:       domain.IntensityModerate,
			Phase:           p.Phase,
			DayOfWeek:       2,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 2),
			DurationMinutes: 45,
			Description:     "Running-specific strength",
			Instructions:    "Hips, glutes and core. Keep loads moderate.",
		},
		{
			Name:            fmt.Sprintf("Tempo Run - %.1f miles", tempo),
			Modality:        domain.ModalityRun,
			Intensity:       intensity,
			Phase:           p.Phase,
			DayOfWeek:       3,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 3),
			DurationMinutes: int(tempo * 8),
			DistanceMiles:   milesPtr(tempo),
			Description:     "Tempo pace workout",
			Instructions:    "Warm up a mile, hold comfortably-hard effort, cool down.",
		},
		restDay(4, p.WeekStart, p.Phase),
		{
			Name:            fmt.Sprintf("Long Run - %.1f miles", long),
			Modality:        domain.ModalityRun,
			Intensity:       domain.IntensityEasy,
			Phase:           p.Phase,
			DayOfWeek:       5,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 5),
			DurationMinutes: int(long * 11),
			DistanceMiles:   milesPtr(long),
			Description:     "Weekly long run",
			Instructions:    "Start easy, maintain effort. Walk breaks OK.",
		},
		{
			Name:            "Cross Training",
			Modality:        domain.ModalityCrossTraining,
			Intensity:       domain.IntensityEasy,
			Phase:           p.Phase,
			DayOfWeek:       6,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 6),
			DurationMinutes: 30,
			Description:     "Low impact activity",
			Instructions:    "Yoga, walking, or other low-intensity activity",
		},
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}
