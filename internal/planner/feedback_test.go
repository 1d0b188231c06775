package planner

import (
	"testing"

	"alcyxob/peakplan/internal/domain"

	"github.com/stretchr/testify/assert"
)

func logsWithRatings(ratings ...[3]int) []domain.WorkoutLog {
	logs := make([]domain.WorkoutLog, len(ratings))
	for i, r := range ratings {
		logs[i] = domain.WorkoutLog{
			PerceivedExertion: r[0],
			EnergyLevel:       r[1],
			EnjoymentLevel:    r[2],
		}
	}
	return logs
}

func TestAggregateFeedbackEmpty(t *testing.T) {
	fb := AggregateFeedback(nil)
	assert.False(t, fb.HasFeedback)
	assert.Equal(t, AdjustNone, fb.IntensityAdjustment)
	assert.Equal(t, AdjustNone, fb.RecoveryAdjustment)
}

func TestAggregateFeedbackThresholds(t *testing.T) {
	tests := []struct {
		name          string
		logs          []domain.WorkoutLog
		wantIntensity Adjustment
		wantRecovery  Adjustment
	}{
		{
			name:          "high exertion decreases",
			logs:          logsWithRatings([3]int{9, 6, 5}, [3]int{8, 6, 5}),
			wantIntensity: AdjustDecrease,
			wantRecovery:  AdjustMaintain,
		},
		{
			name:          "exertion exactly at threshold decreases",
			logs:          logsWithRatings([3]int{7, 6, 0}),
			wantIntensity: AdjustDecrease,
			wantRecovery:  AdjustMaintain,
		},
		{
			name:          "low exertion increases",
			logs:          logsWithRatings([3]int{2, 6, 0}, [3]int{3, 6, 0}),
			wantIntensity: AdjustIncrease,
			wantRecovery:  AdjustMaintain,
		},
		{
			name:          "middling exertion maintains",
			logs:          logsWithRatings([3]int{5, 6, 0}),
			wantIntensity: AdjustMaintain,
			wantRecovery:  AdjustMaintain,
		},
		{
			name:          "low energy wants more rest",
			logs:          logsWithRatings([3]int{5, 3, 0}, [3]int{5, 4, 0}),
			wantIntensity: AdjustMaintain,
			wantRecovery:  AdjustMoreRest,
		},
		{
			name:          "high energy can push harder",
			logs:          logsWithRatings([3]int{5, 9, 0}, [3]int{5, 8, 0}),
			wantIntensity: AdjustMaintain,
			wantRecovery:  AdjustPushHarder,
		},
		{
			name:          "unrated metrics stay none",
			logs:          logsWithRatings([3]int{0, 0, 7}),
			wantIntensity: AdjustNone,
			wantRecovery:  AdjustNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := AggregateFeedback(tt.logs)
			assert.True(t, fb.HasFeedback)
			assert.Equal(t, len(tt.logs), fb.SampleCount)
			assert.Equal(t, tt.wantIntensity, fb.IntensityAdjustment)
			assert.Equal(t, tt.wantRecovery, fb.RecoveryAdjustment)
		})
	}
}

func TestAggregateFeedbackIgnoresUnratedInAverages(t *testing.T) {
	// One rated exertion of 9 among unrated logs still averages 9.
	logs := logsWithRatings([3]int{9, 0, 0}, [3]int{0, 0, 0}, [3]int{0, 0, 0})
	fb := AggregateFeedback(logs)
	assert.Equal(t, 9.0, fb.AvgExertion)
	assert.Equal(t, AdjustDecrease, fb.IntensityAdjustment)
	assert.Equal(t, AdjustNone, fb.RecoveryAdjustment)
}
