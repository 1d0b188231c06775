package planner

import (
	"alcyxob/peakplan/internal/domain"
)

const recoveryNote = "Adjusted for additional recovery based on your recent energy levels"

// Adapt applies aggregated feedback to a freshly synthesized week and
// returns the adjusted copy. Rules run in order: first the intensity
// adjustment (tier step plus duration scale), then the recovery
// adjustment (force moderate-or-harder sessions down to easy). Applied
// exactly once per generated week, never retroactively; with no feedback
// the week passes through unchanged.
func Adapt(week []Descriptor, fb Feedback) []Descriptor {
	adapted := make([]Descriptor, len(week))
	copy(adapted, week)
	if !fb.HasFeedback {
		return adapted
	}

	for i := range adapted {
		d := &adapted[i]
		if d.IsRest() {
			continue
		}

		switch fb.IntensityAdjustment {
		case AdjustDecrease:
			d.Intensity = d.Intensity.StepDown()
			d.DurationMinutes = int(float64(d.DurationMinutes) * 0.9)
		case AdjustIncrease:
			d.Intensity = d.Intensity.StepUp()
			d.DurationMinutes = int(float64(d.DurationMinutes) * 1.1)
		}

		if fb.RecoveryAdjustment == AdjustMoreRest && d.Intensity.Rank() >= domain.IntensityModerate.Rank() {
			d.Intensity = domain.IntensityEasy
			d.Name = "Recovery " + d.Name
			d.Description = recoveryNote
		}
	}
	return adapted
}
