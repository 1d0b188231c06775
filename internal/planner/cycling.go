package planner

import (
	"fmt"

	"alcyxob/peakplan/internal/domain"
)

// cyclingSynthesizer builds a bike-focused endurance week: base, interval
// and tempo rides midweek, a weekend long ride, one leg-strength session.
type cyclingSynthesizer struct{}

const (
	bikeBase, bikeStep, bikeCap = 10.0, 1.0, 50.0
)

func (cyclingSynthesizer) SynthesizeWeek(p WeekParams) ([]Descriptor, error) {
	intensity := phaseIntensity(p.Phase)
	base := taperScale(ramp(bikeBase, bikeStep, bikeCap, p.Week), p.Phase)

	ride := func(day int, name string, dist float64, tier domain.Intensity, desc, instr string) Descriptor {
		return Descriptor{
			Name:            fmt.Sprintf("%s - %.1f miles", name, dist),
			Modality:        domain.ModalityBike,
			Intensity:       tier,
			Phase:           p.Phase,
			DayOfWeek:       day,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, day),
			DurationMinutes: int(dist * 4),
			DistanceMiles:   milesPtr(dist),
			Description:     desc,
			Instructions:    instr,
		}
	}

	week := []Descriptor{
		ride(0, "Base Ride", base, intensity,
			fmt.Sprintf("Week %d aerobic ride", p.Week),
			"Steady effort, cadence 85-95 RPM"),
		{
			Name:            "Leg Strength",
			Modality:        domain.ModalityStrength,
			Intensity:       domain.IntensityModerate,
			Phase:           p.Phase,
			DayOfWeek:       1,
			ScheduledDate:   p.WeekStart.AddDate(0, 0, 1),
			DurationMinutes: 45,
			Description:     "Cycling-specific strength",
			Instructions:    "Squats, lunges, single-leg work. Control the eccentric.",
		},
		ride(2, "Interval Ride", base*0.7, intensity.StepUp(),
			"Short hard efforts with full recovery",
			"After warm-up, 5x3min hard with 3min easy spinning between"),
		restDay(3, p.WeekStart, p.Phase),
		ride(4, "Tempo Ride", base*0.8, intensity,
			"Sustained effort just below threshold",
			"Hold a firm but repeatable effort through the middle block"),
		ride(5, "Long Ride", base*1.5, domain.IntensityEasy,
			"Weekly endurance ride",
			"Steady effort, practice nutrition and hydration"),
		restDay(6, p.WeekStart, p.Phase),
	}
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}
