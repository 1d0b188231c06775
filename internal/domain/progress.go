package domain

// ProgressPercentage computes training progress for a goal: fully
// completed weeks plus a prorated bonus for workouts logged in the
// current week. Returns 0 when the plan has no structure yet, and at
// least 1% once any workout has been logged.
func (g *Goal) ProgressPercentage(completedThisWeek, totalThisWeek, totalCompleted int) float64 {
	if g.TotalWeeks <= 0 || g.CurrentWeek <= 0 {
		return 0
	}

	completedWeeks := g.CurrentWeek - 1
	if completedWeeks < 0 {
		completedWeeks = 0
	}
	progress := float64(completedWeeks) / float64(g.TotalWeeks) * 100

	if totalThisWeek > 0 {
		weekCompletion := float64(completedThisWeek) / float64(totalThisWeek)
		progress += weekCompletion / float64(g.TotalWeeks) * 100
	}

	if totalCompleted > 0 && progress < 1.0 {
		progress = 1.0
	}
	if progress > 100 {
		progress = 100
	}
	return progress
}
