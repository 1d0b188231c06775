package planner

import (
	"time"
)

// Plan duration bounds. An event closer than MinPlanWeeks still gets a
// MinPlanWeeks plan; DefaultMaxPlanWeeks caps open-ended horizons.
const (
	MinPlanWeeks        = 4
	DefaultMaxPlanWeeks = 32
	DefaultHorizonWeeks = 12
)

// PhaseSplit is the week count per training phase. The four counts always
// sum to the total the split was computed for.
type PhaseSplit struct {
	Base  int
	Build int
	Peak  int
	Taper int
}

// Total returns the sum of the four phase counts.
func (s PhaseSplit) Total() int {
	return s.Base + s.Build + s.Peak + s.Taper
}

// TotalWeeks derives the plan length from an optional event date: days
// until the event divided into weeks, clamped to [MinPlanWeeks, maxWeeks].
// Without an event date the default horizon applies.
func TotalWeeks(eventDate *time.Time, now time.Time, defaultWeeks, maxWeeks int) int {
	if defaultWeeks <= 0 {
		defaultWeeks = DefaultHorizonWeeks
	}
	if maxWeeks <= 0 {
		maxWeeks = DefaultMaxPlanWeeks
	}
	if eventDate == nil {
		if defaultWeeks > maxWeeks {
			return maxWeeks
		}
		return defaultWeeks
	}
	days := int(eventDate.Sub(now).Hours() / 24)
	weeks := days / 7
	if weeks < MinPlanWeeks {
		weeks = MinPlanWeeks
	}
	if weeks > maxWeeks {
		weeks = maxWeeks
	}
	return weeks
}

// SplitPhases apportions totalWeeks across base/build/peak/taper using a
// step table keyed by total-week bands. Later phases get fixed counts per
// band and base absorbs the remainder, so the split always sums exactly
// to totalWeeks. Taper is at least 1 week once totalWeeks >= 8.
func SplitPhases(totalWeeks int) PhaseSplit {
	if totalWeeks < 1 {
		totalWeeks = 1
	}

	var build, peak, taper int
	switch {
	case totalWeeks <= 8:
		build, peak, taper = 3, 1, 0
	case totalWeeks <= 12:
		build, peak, taper = 4, 1, 1
	case totalWeeks <= 16:
		build, peak, taper = 5, 2, 1
	case totalWeeks <= 20:
		build, peak, taper = 6, 2, 2
	default:
		build, peak, taper = 8, 3, 2
	}
	if totalWeeks >= 8 && taper < 1 {
		taper = 1
	}

	base := totalWeeks - build - peak - taper
	// Short horizons: give back build weeks, then peak, then taper until
	// base is non-negative.
	for base < 0 && build > 0 {
		build--
		base++
	}
	for base < 0 && peak > 0 {
		peak--
		base++
	}
	for base < 0 && taper > 0 {
		taper--
		base++
	}
	if base < 0 {
		base = 0
	}

	return PhaseSplit{Base: base, Build: build, Peak: peak, Taper: taper}
}
