package metrics

// GoalProgress returns how much of the goal's target the completed sessions
// for its subject cover inside the goal's inclusive date window, as a
// percentage capped at 100. A goal with a non-positive target yields 0.
func GoalProgress(goal StudyGoal, sessions []StudySession) float64 {
	if goal.TargetHours <= 0 {
		return 0
	}

	actualMinutes := 0
	for _, s := range sessions {
		if !s.Completed || s.Subject != goal.Subject {
			continue
		}
		if s.Date.Before(goal.StartDate) || s.Date.After(goal.EndDate) {
			continue
		}
		actualMinutes += s.Duration
	}

	targetMinutes := goal.TargetHours * 60
	progress := float64(actualMinutes) / targetMinutes * 100
	if progress > 100 {
		progress = 100
	}
	return progress
}
