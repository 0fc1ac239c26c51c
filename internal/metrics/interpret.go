package metrics

// Level messages and recommendation strings are fixed; the order of the
// recommendation checks is part of the contract so output stays
// deterministic for a given aggregate.

const (
	msgExcellent        = "You're doing excellent work! Your completion rate and planning accuracy are outstanding."
	msgGood             = "Good progress! You're keeping up with your assignments well."
	msgFair             = "Fair progress. There's room to improve your consistency."
	msgNeedsImprovement = "Your study metrics need improvement. Review the recommendations below to get back on track."

	recLowCompletion  = "Try to improve your assignment completion rate by breaking large tasks into smaller steps."
	recLowAccuracy    = "Your time estimates are off. Track actual hours spent to calibrate future planning."
	recManyHigh       = "A large share of your assignments is high priority. Start them earlier to avoid last-minute pressure."
	recWeakWeeks      = "Recent weeks show less than half of due assignments completed. Schedule regular study sessions."
	recLaggingCourses = "Some courses are falling behind. Allocate more time to courses below 50% completion."
	recKeepItUp       = "Great job! Keep up your current study habits."
)

// Interpret maps an assignment aggregate to a qualitative level, a message
// and an ordered list of recommendations. The level thresholds apply to the
// mean of completion rate and planning accuracy.
func Interpret(m AssignmentMetrics) Interpretation {
	overall := (m.CompletionRate + m.PlanningAccuracy) / 2

	var level PerformanceLevel
	var message string
	switch {
	case overall >= 85:
		level, message = LevelExcellent, msgExcellent
	case overall >= 70:
		level, message = LevelGood, msgGood
	case overall >= 50:
		level, message = LevelFair, msgFair
	default:
		level, message = LevelNeedsImprovement, msgNeedsImprovement
	}

	var recs []string
	if m.CompletionRate < 70 {
		recs = append(recs, recLowCompletion)
	}
	if m.PlanningAccuracy < 70 {
		recs = append(recs, recLowAccuracy)
	}
	total := m.PriorityDistribution.High + m.PriorityDistribution.Medium + m.PriorityDistribution.Low
	if total > 0 && float64(m.PriorityDistribution.High)/float64(total) > 0.4 {
		recs = append(recs, recManyHigh)
	}
	recent := m.WeeklyProgress
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	for _, week := range recent {
		if week.Total > 0 && float64(week.Completed)/float64(week.Total) < 0.5 {
			recs = append(recs, recWeakWeeks)
			break
		}
	}
	for _, course := range m.CourseProgress {
		if course.Completion < 50 {
			recs = append(recs, recLaggingCourses)
			break
		}
	}
	if len(recs) == 0 {
		recs = []string{recKeepItUp}
	}

	return Interpretation{Level: level, Message: message, Recommendations: recs}
}
