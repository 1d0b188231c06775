package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// triathlonSynthesizer builds an endurance-multisport week: one session
// per discipline midweek, a recovery swim, an alternating long run/ride
// on the weekend long day, and one strength session.
type triathlonSynthesizer struct{}

// Weekly ramp baselines and caps, in miles and yards.
const (
	triRunBase, triRunStep, triRunCap    = 2.0, 0.2, 6.0
	triBikeBase, triBikeStep, triBikeCap = 10.0, 1.0, 25.0
	triSwimBase, triSwimStep, triSwimCap = 500.0, 25.0, 1500.0
)

func (triathlonSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	intensity := phaseIntensity(p.Phase)

	run := taperScale(ramp(triRunBase, triRunStep, triRunCap, p.Week), p.Phase)
	bike := taperScale(ramp(triBikeBase, triBikeStep, triBikeCap, p.Week), p.Phase)
	swim := taperScale(ramp(triSwimBase, triSwimStep, triSwimCap, p.Week), p.Phase)

	week := []Descriptor{
		restDay(0, p.WeekStart, p.Phase),
		{
			Name:            fmt.Sprintf("Run - %.1f miles", run),
			Modality:        domain.ModalityRun,
			Intensity:       intensity,
			Phase:           p.Phase,
			DayOfWeek:       1,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 1),
			DurationMinutes: int(run * 10),
			DistanceMiles:   milesPtr(run),
			Description:     fmt.Sprintf("Week %d steady run", p.Week),
			Instructions:    "Focus on form and breathing. Walk breaks are OK.",
		},
		{
			Name:            fmt.Sprintf("Swim - %d yards", int(swim)),
			Modality:        domain.ModalitySwim,
			Intensity:       intensity,
			Phase:           p.Phase,
			DayOfWeek:       2,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 2),
			DurationMinutes: int(swim / 25), // ~25 yards per minute
			TotalYards:      yardsPtr(int(swim)),
			Description:     "Focus on technique and breathing",
			Instructions:    "Warm up 100y, main set with rest as needed",
		},
		{
			Name:            fmt.Sprintf("Bike - %.1f miles", bike),
			Modality:        domain.ModalityBike,
			Intensity:       intensity,
			Phase:           p.Phase,
			DayOfWeek:       3,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 3),
			DurationMinutes: int(bike * 4),
			DistanceMiles:   milesPtr(bike),
			Description:     "Steady pace, build endurance",
			Instructions:    "Maintain comfortable effort, cadence 80-90 RPM",
		},
		{
			Name:            fmt.Sprintf("Recovery Swim - %d yards", int(swim*0.6)),
			Modality:        domain.ModalitySwim,
			Intensity:       domain.IntensityRecovery,
			Phase:           p.Phase,
			DayOfWeek:       4,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 4),
			DurationMinutes: int(swim * 0.6 / 25),
			TotalYards:      yardsPtr(int(swim * 0.6)),
			Description:     "Easy recovery swim",
			Instructions:    "Very easy pace, focus on relaxation",
		},
		longSession(p, run, bike),
		{
			Name:            "Strength Training",
			Modality:        domain.ModalityStrength,
			Intensity:       domain.IntensityModerate,
			Phase:           p.Phase,
			DayOfWeek:       6,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 6),
			DurationMinutes: 45,
			Description:     "Full body strength",
			Instructions:    "Focus on major muscle groups",
		},
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}

// longSession alternates the long day by week parity: even weeks run,
// odd weeks ride.
func longSession(p WeekParams, run, bike float64) Descriptor {
	if p.Week%2 == 0 {
		dist := run * 1.5
		return Descriptor{
			Name:            fmt.Sprintf("Long Run - %.1f miles", dist),
			Modality:        domain.ModalityRun,
			Intensity:       domain.IntensityEasy,
			Phase:           p.Phase,
			DayOfWeek:       5,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 5),
			DurationMinutes: int(dist * 11),
			DistanceMiles:   milesPtr(dist),
			Description:     "Build endurance with longer run",
			Instructions:    "Start easy, maintain effort. Walk breaks OK.",
		}
	}
	dist := bike * 1.2
	return Descriptor{
		Name:            fmt.Sprintf("Long Bike - %.1f miles", dist),
		Modality:        domain.ModalityBike,
		Intensity:       domain.IntensityEasy,
		Phase:           p.Phase,
		DayOfWeek:       5,
		ScheduledDate:   p.WeekStart.AddDate(0, 0, 5),
		DurationMinutes: int(dist * 4.5),
		DistanceMiles:   milesPtr(dist),
		Description:     "Endurance bike ride",
		Instructions:    "Steady effort, practice nutrition and hydration",
	}
}
