package metrics

import (
	"math"
	"sort"
	"time"
)

func completedAssignmentIDs(submissions []AssignmentSubmission) map[string]bool {
	done := make(map[string]bool)
	for _, sub := range submissions {
		if sub.Status.Completed() {
			done[sub.AssignmentID] = true
		}
	}
	return done
}

// AssignmentCompletionRate returns the percentage of assignments with a
// submitted or graded submission. The numerator counts distinct assignment
// ids over the submission list without intersecting against the assignment
// list, so submissions referencing unknown assignments still count; the
// result is capped at 100 to keep the percentage invariant.
func AssignmentCompletionRate(assignments []Assignment, submissions []AssignmentSubmission) float64 {
	if len(assignments) == 0 {
		return 0
	}
	done := completedAssignmentIDs(submissions)
	rate := float64(len(done)) / float64(len(assignments)) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}

// PlanningAccuracy measures how close actual effort came to the estimate,
// averaged over submissions that carry both a positive estimate and an
// actual figure. 100 means every estimate was exact; an actual that misses
// the estimate by 100% or more scores 0 for that submission.
func PlanningAccuracy(submissions []AssignmentSubmission) float64 {
	sum, count := 0.0, 0
	for _, sub := range submissions {
		if sub.EstimatedHours == nil || sub.ActualHours == nil || *sub.EstimatedHours <= 0 {
			continue
		}
		diff := math.Abs(*sub.EstimatedHours - *sub.ActualHours)
		accuracy := 100 - diff / *sub.EstimatedHours * 100
		if accuracy < 0 {
			accuracy = 0
		}
		sum += accuracy
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// PriorityDistribution tallies assignments per priority. Unknown priority
// values are ignored.
func PriorityDistribution(assignments []Assignment) PriorityCount {
	var dist PriorityCount
	for _, a := range assignments {
		switch a.Priority {
		case PriorityHigh:
			dist.High++
		case PriorityMedium:
			dist.Medium++
		case PriorityLow:
			dist.Low++
		}
	}
	return dist
}

// weekStartMonday returns the Monday on or before t at midnight; Sunday maps
// to the previous Monday.
func weekStartMonday(t time.Time) time.Time {
	day := startOfDay(t)
	offset := int(day.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// WeeklyProgress buckets assignments by the week of their due date and
// reports how many of each bucket are completed. Assignments without a due
// date are excluded. Buckets are sorted ascending by week start.
func WeeklyProgress(assignments []Assignment, submissions []AssignmentSubmission) []WeekProgress {
	done := completedAssignmentIDs(submissions)

	type bucket struct{ completed, total int }
	buckets := make(map[string]*bucket)
	for _, a := range assignments {
		if a.DueDate == nil {
			continue
		}
		week := weekStartMonday(*a.DueDate).Format("2006-01-02")
		b := buckets[week]
		if b == nil {
			b = &bucket{}
			buckets[week] = b
		}
		b.total++
		if done[a.ID] {
			b.completed++
		}
	}

	out := make([]WeekProgress, 0, len(buckets))
	for week, b := range buckets {
		out = append(out, WeekProgress{WeekStart: week, Completed: b.completed, Total: b.total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart < out[j].WeekStart })
	return out
}

// CourseProgress reports per-course completion percentages over all
// assignments grouped by course id. Courses appear in the order their first
// assignment appears in the input.
func CourseProgress(assignments []Assignment, submissions []AssignmentSubmission) []CourseCompletion {
	done := completedAssignmentIDs(submissions)

	type bucket struct{ completed, total int }
	buckets := make(map[string]*bucket)
	var order []string
	for _, a := range assignments {
		b := buckets[a.CourseID]
		if b == nil {
			b = &bucket{}
			buckets[a.CourseID] = b
			order = append(order, a.CourseID)
		}
		b.total++
		if done[a.ID] {
			b.completed++
		}
	}

	out := make([]CourseCompletion, 0, len(order))
	for _, courseID := range order {
		b := buckets[courseID]
		out = append(out, CourseCompletion{
			CourseID:   courseID,
			Completion: float64(b.completed) / float64(b.total) * 100,
		})
	}
	return out
}

// ComputeAssignmentMetrics assembles the canonical aggregate from one pass
// over the inputs.
func ComputeAssignmentMetrics(assignments []Assignment, submissions []AssignmentSubmission) AssignmentMetrics {
	return AssignmentMetrics{
		CompletionRate:       AssignmentCompletionRate(assignments, submissions),
		PlanningAccuracy:     PlanningAccuracy(submissions),
		PriorityDistribution: PriorityDistribution(assignments),
		WeeklyProgress:       WeeklyProgress(assignments, submissions),
		CourseProgress:       CourseProgress(assignments, submissions),
	}
}
