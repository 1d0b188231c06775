package planner

import (
	"testing"
	"time"

	"alcyxob/peakplan/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWeek(t *testing.T) []Descriptor {
	t.Helper()
	week, err := triathlonSynthesizer{}.SynthesizeWeek(WeekParams{
		Plan:      &domain.TrainingPlan{TotalWeeks: 10},
		Week:      3,
		Phase:     domain.PhaseBuild,
		WeekStart: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return week
}

func TestAdaptNoFeedbackIsNoOp(t *testing.T) {
	week := sampleWeek(t)
	adapted := Adapt(week, Feedback{})
	assert.Equal(t, week, adapted)
}

func TestAdaptDoesNotMutateInput(t *testing.T) {
	week := sampleWeek(t)
	original := make([]Descriptor, len(week))
	copy(original, week)

	Adapt(week, Feedback{
		HasFeedback:         true,
		IntensityAdjustment: AdjustDecrease,
		RecoveryAdjustment:  AdjustMaintain,
	})
	assert.Equal(t, original, week)
}

func TestAdaptDecrease(t *testing.T) {
	week := sampleWeek(t)
	adapted := Adapt(week, Feedback{
		HasFeedback:         true,
		IntensityAdjustment: AdjustDecrease,
		RecoveryAdjustment:  AdjustMaintain,
	})

	for i := range week {
		if week[i].IsRest() {
			assert.Equal(t, week[i], adapted[i], "rest day %d must be untouched", i)
			continue
		}
		assert.Equal(t, week[i].Intensity.StepDown(), adapted[i].Intensity, "day %d", i)
		assert.Equal(t, int(float64(week[i].DurationMinutes)*0.9), adapted[i].DurationMinutes, "day %d", i)
	}
}

func TestAdaptIncrease(t *testing.T) {
	week := sampleWeek(t)
	adapted := Adapt(week, Feedback{
		HasFeedback:         true,
		IntensityAdjustment: AdjustIncrease,
		RecoveryAdjustment:  AdjustMaintain,
	})

	for i := range week {
		if week[i].IsRest() {
			continue
		}
		assert.Equal(t, week[i].Intensity.StepUp(), adapted[i].Intensity, "day %d", i)
		assert.Equal(t, int(float64(week[i].DurationMinutes)*1.1), adapted[i].DurationMinutes, "day %d", i)
	}
}

func TestAdaptMoreRest(t *testing.T) {
	week := sampleWeek(t)
	adapted := Adapt(week, Feedback{
		HasFeedback:         true,
		IntensityAdjustment: AdjustMaintain,
		RecoveryAdjustment:  AdjustMoreRest,
	})

	for i := range week {
		if week[i].IsRest() {
			continue
		}
		if week[i].Intensity.Rank() >= domain.IntensityModerate.Rank() {
			assert.Equal(t, domain.IntensityEasy, adapted[i].Intensity, "day %d", i)
			assert.Equal(t, "Recovery "+week[i].Name, adapted[i].Name, "day %d", i)
			assert.Equal(t, recoveryNote, adapted[i].Description, "day %d", i)
		} else {
			assert.Equal(t, week[i].Intensity, adapted[i].Intensity, "easy day %d stays put", i)
			assert.Equal(t, week[i].Name, adapted[i].Name, "day %d", i)
		}
	}
}

func TestAdaptIntensityBounds(t *testing.T) {
	week := []Descriptor{
		{Name: "Floor", Modality: domain.ModalityRun, Intensity: domain.IntensityRecovery, Phase: domain.PhaseBase, DayOfWeek: 0, DurationMinutes: 30},
		{Name: "Ceiling", Modality: domain.ModalityRun, Intensity: domain.IntensityVeryHard, Phase: domain.PhaseBase, DayOfWeek: 1, DurationMinutes: 30},
	}

	down := Adapt(week, Feedback{HasFeedback: true, IntensityAdjustment: AdjustDecrease})
	assert.Equal(t, domain.IntensityRecovery, down[0].Intensity, "recovery floors")

	up := Adapt(week, Feedback{HasFeedback: true, IntensityAdjustment: AdjustIncrease})
	assert.Equal(t, domain.IntensityVeryHard, up[1].Intensity, "very_hard ceilings")
}
