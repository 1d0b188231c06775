package planner

import (
	"errors"
	"fmt"
	"time"

	"alcyxob/peakplan/internal/domain"
)

// DaysPerWeek is the size of every generated week set.
const DaysPerWeek = 7

// Descriptor is a single synthesized workout before persistence. Unlike a
// domain.Workout it carries no identifiers; the scheduler attaches those
// when a week is committed. Rest days are explicit zero-effort entries.
type Descriptor struct {
	Name            string
	Modality        domain.Modality
	Intensity       domain.Intensity
	Phase           domain.Phase
	DayOfWeek       int // 0=Monday .. 6=Sunday
	ScheduledDate   time.Time
	DurationMinutes int
	DistanceMiles   *float64
	TotalYards      *int
	Description     string
	Instructions    string
}

// IsRest reports whether the descriptor is an explicit rest entry.
func (d *Descriptor) IsRest() bool {
	return d.Modality == domain.ModalityRest
}

// Validate checks the descriptor's internal consistency. Called once per
// descriptor when a week set is assembled.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return errors.New("descriptor requires a name")
	}
	if d.DayOfWeek < 0 || d.DayOfWeek >= DaysPerWeek {
		return fmt.Errorf("day of week %d out of range 0..6", d.DayOfWeek)
	}
	if d.Modality == "" || d.Intensity == "" || d.Phase == "" {
		return errors.New("descriptor requires modality, intensity and phase")
	}
	if d.DurationMinutes < 0 {
		return errors.New("descriptor duration cannot be negative")
	}
	if d.IsRest() && d.DurationMinutes != 0 {
		return errors.New("rest descriptor must have zero duration")
	}
	return nil
}

// restDay builds the canonical zero-effort rest entry for a slot.
func restDay(day int, weekStart time.Time, phase domain.Phase) Descriptor {
	return Descriptor{
		Name:          "Rest Day",
		Modality:      domain.ModalityRest,
		Intensity:     domain.IntensityRecovery,
		Phase:         phase,
		DayOfWeek:     day,
		ScheduledDate: weekStart.AddDate(0, 0, day),
		Description:   "Complete rest or light stretching",
	}
}

func milesPtr(v float64) *float64 { return &v }
func yardsPtr(v int) *int         { return &v }

// ValidateWeek checks the week-set invariant: exactly 7 descriptors, one
// per day-of-week 0..6, in order.
func ValidateWeek(week []Descriptor) error {
	if len(week) != DaysPerWeek {
		return fmt.Errorf("week set has %d descriptors, want %d", len(week), DaysPerWeek)
	}
	for i := range week {
		if week[i].DayOfWeek != i {
			return fmt.Errorf("descriptor %d has day of week %d", i, week[i].DayOfWeek)
		}
		if err := week[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
