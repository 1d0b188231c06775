package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeekRequest() WeekRequest {
	return WeekRequest{
		Goal:      &domain.Goal{Category: domain.CategoryTriathlon, TotalWeeks: 10},
		Athlete:   &domain.User{FitnessLevel: domain.LevelIntermediate},
		Plan:      &domain.TrainingPlan{TotalWeeks: 10, BaseWeeks: 4, BuildWeeks: 4, PeakWeeks: 1, TaperWeeks: 1},
		Week:      2,
		Phase:     domain.PhaseBase,
		WeekStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

// stubSupplier returns a canned week or error.
type stubSupplier struct {
	name  string
	week  []planner.Descriptor
	err   error
	calls int
}

func (s *stubSupplier) Name() string { return s.name }

func (s *stubSupplier) SupplyWeek(_ context.Context, _ WeekRequest) ([]planner.Descriptor, error) {
	s.calls++
	return s.week, s.err
}

func TestSynthesizerSupplierProducesValidWeek(t *testing.T) {
	week, err := SynthesizerSupplier{}.SupplyWeek(context.Background(), testWeekRequest())
	require.NoError(t, err)
	require.NoError(t, planner.ValidateWeek(week))
}

func TestChainFallsBackOnFailure(t *testing.T) {
	failing := &stubSupplier{name: "failing", err: errors.New("upstream down")}
	chain := NewChain(failing, SynthesizerSupplier{})

	week, err := chain.SupplyWeek(context.Background(), testWeekRequest())
	require.NoError(t, err)
	require.NoError(t, planner.ValidateWeek(week))
	assert.Equal(t, 1, failing.calls)
}

func TestChainRejectsMalformedWeek(t *testing.T) {
	// A supplier handing back a 3-day week must not win the chain.
	short := &stubSupplier{name: "short", week: make([]planner.Descriptor, 3)}
	chain := NewChain(short, SynthesizerSupplier{})

	week, err := chain.SupplyWeek(context.Background(), testWeekRequest())
	require.NoError(t, err)
	require.NoError(t, planner.ValidateWeek(week))
}

func TestChainAllFail(t *testing.T) {
	chain := NewChain(
		&stubSupplier{name: "a", err: errors.New("down")},
		&stubSupplier{name: "b", err: errors.New("also down")},
	)

	_, err := chain.SupplyWeek(context.Background(), testWeekRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all plan suppliers failed")
}

func TestChainSkipsNilSuppliers(t *testing.T) {
	chain := NewChain(nil, SynthesizerSupplier{})
	week, err := chain.SupplyWeek(context.Background(), testWeekRequest())
	require.NoError(t, err)
	assert.Len(t, week, planner.DaysPerWeek)
}
