package planner

import (
	"alcyxob/peakplan/internal/domain"
)

// Adjustment is a directional hint derived from aggregated feedback.
type Adjustment string

const (
	AdjustNone       Adjustment = "none"
	AdjustMaintain   Adjustment = "maintain"
	AdjustDecrease   Adjustment = "decrease"
	AdjustIncrease   Adjustment = "increase"
	AdjustMoreRest   Adjustment = "more_rest"
	AdjustPushHarder Adjustment = "can_push_harder"
)

// Feedback is the reduction of an athlete's recent workout logs into
// aggregate signals and adjustment hints. Averages are 0 when no sample
// rated the corresponding metric, in which case the matching adjustment
// is AdjustNone. HasFeedback is false when the lookback window held no
// logs at all; adaptation is then a no-op.
type Feedback struct {
	HasFeedback  bool    `json:"hasFeedback"`
	SampleCount  int     `json:"sampleCount"`
	AvgExertion  float64 `json:"avgExertion,omitempty"`
	AvgEnergy    float64 `json:"avgEnergy,omitempty"`
	AvgEnjoyment float64 `json:"avgEnjoyment,omitempty"`

	IntensityAdjustment Adjustment `json:"intensityAdjustment"`
	RecoveryAdjustment  Adjustment `json:"recoveryAdjustment"`
}

// Exertion and energy thresholds on the 1-10 rating scale.
const (
	exertionDecreaseAt = 7
	exertionIncreaseAt = 3
	energyMoreRestAt   = 4
	energyPushAt       = 8
)

// AggregateFeedback reduces recent workout logs to adjustment signals.
// Callers supply the logs for the lookback window, most recent first.
func AggregateFeedback(logs []domain.WorkoutLog) Feedback {
	fb := Feedback{
		IntensityAdjustment: AdjustNone,
		RecoveryAdjustment:  AdjustNone,
	}
	if len(logs) == 0 {
		return fb
	}
	fb.HasFeedback = true
	fb.SampleCount = len(logs)

	var exertionSum, energySum, enjoymentSum int
	var exertionN, energyN, enjoymentN int
	for i := range logs {
		if v := logs[i].PerceivedExertion; v > 0 {
			exertionSum += v
			exertionN++
		}
		if v := logs[i].EnergyLevel; v > 0 {
			energySum += v
			energyN++
		}
		if v := logs[i].EnjoymentLevel; v > 0 {
			enjoymentSum += v
			enjoymentN++
		}
	}

	if exertionN > 0 {
		fb.AvgExertion = float64(exertionSum) / float64(exertionN)
		switch {
		case fb.AvgExertion >= exertionDecreaseAt:
			fb.IntensityAdjustment = AdjustDecrease
		case fb.AvgExertion <= exertionIncreaseAt:
			fb.IntensityAdjustment = AdjustIncrease
		default:
			fb.IntensityAdjustment = AdjustMaintain
		}
	}
	if energyN > 0 {
		fb.AvgEnergy = float64(energySum) / float64(energyN)
		switch {
		case fb.AvgEnergy <= energyMoreRestAt:
			fb.RecoveryAdjustment = AdjustMoreRest
		case fb.AvgEnergy >= energyPushAt:
			fb.RecoveryAdjustment = AdjustPushHarder
		default:
			fb.RecoveryAdjustment = AdjustMaintain
		}
	}
	if enjoymentN > 0 {
		fb.AvgEnjoyment = float64(enjoymentSum) / float64(enjoymentN)
	}

	return fb
}
