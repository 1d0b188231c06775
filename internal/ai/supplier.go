// Package ai supplies externally generated training weeks. Suppliers are
// advisory: every response is validated against the same week-set rules
// the built-in synthesizers obey, and any failure falls through to the
// next supplier in the chain.
package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"alcyxob/peakplan/internal/domain"
	"alcyxob/peakplan/internal/planner"
)

// WeekRequest describes one plan week to be supplied.
type WeekRequest struct {
	Goal      *domain.Goal
	Athlete   *domain.User
	Plan      *domain.TrainingPlan
	Week      int // 1-based
	Phase     domain.Phase
	WeekStart time.Time
}

// PlanSupplier produces a full 7-descriptor week for a request.
// Implementations must return an error rather than a partial or
// malformed week.
type PlanSupplier interface {
	Name() string
	SupplyWeek(ctx context.Context, req WeekRequest) ([]planner.Descriptor, error)
}

// Compile-time interface check
var _ PlanSupplier = (*SynthesizerSupplier)(nil)
var _ PlanSupplier = (*Chain)(nil)

// SynthesizerSupplier adapts the deterministic per-category synthesizers
// to the supplier interface. It never fails for a valid request, which
// makes it the canonical tail of every chain.
type SynthesizerSupplier struct{}

func (SynthesizerSupplier) Name() string { return "synthesizer" }

func (SynthesizerSupplier) SupplyWeek(_ context.Context, req WeekRequest) ([]planner.Descriptor, error) {
	strategy := planner.ForCategory(req.Goal.Category)
	week, err := strategy.SynthesizeWeek(planner.WeekParams{
		Plan:      req.Plan,
		Week:      req.Week,
		Phase:     req.Phase,
		WeekStart: req.WeekStart,
	})
	if err != nil {
		return nil, err
	}
	if err := planner.ValidateWeek(week); err != nil {
		return nil, err
	}
	return week, nil
}

// Chain tries suppliers in order and returns the first valid week.
// Failures are logged and swallowed; only when every supplier fails does
// the chain itself fail. Construct chains so the last supplier is the
// deterministic SynthesizerSupplier.
type Chain struct {
	suppliers []PlanSupplier
}

// NewChain builds a supplier chain. Nil entries are skipped.
func NewChain(suppliers ...PlanSupplier) *Chain {
	c := &Chain{}
	for _, s := range suppliers {
		if s != nil {
			c.suppliers = append(c.suppliers, s)
		}
	}
	return c
}

func (c *Chain) Name() string { return "chain" }

// SupplyWeek walks the chain. Every candidate week is re-validated here
// so a misbehaving supplier can never hand the scheduler a bad week set.
func (c *Chain) SupplyWeek(ctx context.Context, req WeekRequest) ([]planner.Descriptor, error) {
	var lastErr error
	for _, s := range c.suppliers {
		week, err := s.SupplyWeek(ctx, req)
		if err == nil {
			if vErr := planner.ValidateWeek(week); vErr == nil {
				return week, nil
			} else {
				err = vErr
			}
		}
		log.Printf("WARN: plan supplier %s failed for week %d: %v", s.Name(), req.Week, err)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no suppliers configured")
	}
	return nil, fmt.Errorf("all plan suppliers failed: %w", lastErr)
}
