package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignment(id, courseID string, priority Priority, dueDate *time.Time) Assignment {
	return Assignment{
		ID:       id,
		CourseID: courseID,
		Title:    "Assignment " + id,
		Status:   AssignmentTodo,
		Priority: priority,
		DueDate:  dueDate,
	}
}

func submission(id, assignmentID string, status SubmissionStatus) AssignmentSubmission {
	return AssignmentSubmission{
		ID:           id,
		AssignmentID: assignmentID,
		StudentID:    "u1",
		Status:       status,
	}
}

func hours(h float64) *float64 { return &h }

func TestAssignmentCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, AssignmentCompletionRate(nil, nil))

	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, nil),
		assignment("2", "c1", PriorityMedium, nil),
		assignment("3", "c2", PriorityLow, nil),
	}
	submissions := []AssignmentSubmission{
		submission("s1", "1", SubmissionSubmitted),
		submission("s2", "2", SubmissionGraded),
		submission("s3", "3", SubmissionInProgress),
	}
	assert.InDelta(t, 66.67, AssignmentCompletionRate(assignments, submissions), 0.01)

	done := []AssignmentSubmission{submission("s1", "1", SubmissionGraded)}
	one := assignments[:1]
	assert.Equal(t, 100.0, AssignmentCompletionRate(one, done))
}

func TestAssignmentCompletionRate_DuplicateSubmissionsCountOnce(t *testing.T) {
	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, nil),
		assignment("2", "c1", PriorityLow, nil),
	}
	submissions := []AssignmentSubmission{
		submission("s1", "1", SubmissionSubmitted),
		submission("s2", "1", SubmissionGraded),
	}
	assert.Equal(t, 50.0, AssignmentCompletionRate(assignments, submissions))
}

// Submissions referencing ids outside the assignment list still count toward
// the numerator; the cap keeps the result inside [0,100].
func TestAssignmentCompletionRate_UnknownIDsStillCount(t *testing.T) {
	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, nil),
	}
	submissions := []AssignmentSubmission{
		submission("s1", "orphan-a", SubmissionSubmitted),
		submission("s2", "orphan-b", SubmissionGraded),
	}
	assert.Equal(t, 100.0, AssignmentCompletionRate(assignments, submissions))
}

func TestPlanningAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, PlanningAccuracy(nil))

	submissions := []AssignmentSubmission{
		{ID: "1", AssignmentID: "a1", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(10), ActualHours: hours(10)},
		{ID: "2", AssignmentID: "a2", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(5), ActualHours: hours(6)},
		{ID: "3", AssignmentID: "a3", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(8), ActualHours: hours(4)},
	}
	// per item: 100, 80, 50 -> mean 76.67
	assert.InDelta(t, 76.67, PlanningAccuracy(submissions), 0.01)
}

func TestPlanningAccuracy_IgnoresIncompleteEstimates(t *testing.T) {
	submissions := []AssignmentSubmission{
		{ID: "1", AssignmentID: "a1", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(10)},
		{ID: "2", AssignmentID: "a2", StudentID: "u1", Status: SubmissionGraded, ActualHours: hours(5)},
		{ID: "3", AssignmentID: "a3", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(8), ActualHours: hours(8)},
	}
	assert.Equal(t, 100.0, PlanningAccuracy(submissions))
}

func TestPlanningAccuracy_FloorsAtZeroPerSubmission(t *testing.T) {
	submissions := []AssignmentSubmission{
		// actual misses the estimate by 300%: floors at 0, not -200
		{ID: "1", AssignmentID: "a1", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(2), ActualHours: hours(8)},
		{ID: "2", AssignmentID: "a2", StudentID: "u1", Status: SubmissionGraded, EstimatedHours: hours(4), ActualHours: hours(4)},
	}
	assert.InDelta(t, 50.0, PlanningAccuracy(submissions), 0.001)
}

func TestPriorityDistribution(t *testing.T) {
	assert.Equal(t, PriorityCount{}, PriorityDistribution(nil))

	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, nil),
		assignment("2", "c1", PriorityHigh, nil),
		assignment("3", "c1", PriorityMedium, nil),
		assignment("4", "c1", PriorityLow, nil),
		assignment("5", "c1", Priority("unknown"), nil),
	}
	assert.Equal(t, PriorityCount{High: 2, Medium: 1, Low: 1}, PriorityDistribution(assignments))
}

func TestWeeklyProgress(t *testing.T) {
	assert.Empty(t, WeeklyProgress(nil, nil))

	due := func(y int, m time.Month, d int) *time.Time {
		t := day(y, m, d)
		return &t
	}

	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, due(2024, 1, 15)),   // Monday
		assignment("2", "c1", PriorityMedium, due(2024, 1, 16)), // same week
		assignment("3", "c1", PriorityLow, due(2024, 1, 22)),    // next week
		assignment("4", "c1", PriorityLow, nil),                 // excluded
	}
	submissions := []AssignmentSubmission{
		submission("s1", "1", SubmissionSubmitted),
	}

	progress := WeeklyProgress(assignments, submissions)
	require.Len(t, progress, 2)

	assert.Equal(t, WeekProgress{WeekStart: "2024-01-15", Completed: 1, Total: 2}, progress[0])
	assert.Equal(t, WeekProgress{WeekStart: "2024-01-22", Completed: 0, Total: 1}, progress[1])
}

func TestWeeklyProgress_SundayBelongsToPreviousMonday(t *testing.T) {
	sunday := day(2024, 1, 21)
	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, &sunday),
	}

	progress := WeeklyProgress(assignments, nil)
	require.Len(t, progress, 1)
	assert.Equal(t, "2024-01-15", progress[0].WeekStart)
}

func TestWeeklyProgress_SortedAscending(t *testing.T) {
	due := func(d int) *time.Time {
		t := day(2024, 3, d)
		return &t
	}
	assignments := []Assignment{
		assignment("1", "c1", PriorityLow, due(25)),
		assignment("2", "c1", PriorityLow, due(4)),
		assignment("3", "c1", PriorityLow, due(11)),
	}

	progress := WeeklyProgress(assignments, nil)
	require.Len(t, progress, 3)
	assert.Equal(t, "2024-03-04", progress[0].WeekStart)
	assert.Equal(t, "2024-03-11", progress[1].WeekStart)
	assert.Equal(t, "2024-03-25", progress[2].WeekStart)
}

func TestCourseProgress(t *testing.T) {
	assert.Empty(t, CourseProgress(nil, nil))

	assignments := []Assignment{
		assignment("1", "c1", PriorityHigh, nil),
		assignment("2", "c1", PriorityMedium, nil),
		assignment("3", "c2", PriorityLow, nil),
	}
	submissions := []AssignmentSubmission{
		submission("s1", "1", SubmissionSubmitted),
		submission("s2", "2", SubmissionSubmitted),
	}

	progress := CourseProgress(assignments, submissions)
	require.Len(t, progress, 2)

	assert.Equal(t, CourseCompletion{CourseID: "c1", Completion: 100}, progress[0])
	assert.Equal(t, CourseCompletion{CourseID: "c2", Completion: 0}, progress[1])
}

func TestComputeAssignmentMetrics(t *testing.T) {
	m := ComputeAssignmentMetrics(nil, nil)
	assert.Equal(t, 0.0, m.CompletionRate)
	assert.Equal(t, 0.0, m.PlanningAccuracy)
	assert.Equal(t, PriorityCount{}, m.PriorityDistribution)
	assert.Empty(t, m.WeeklyProgress)
	assert.Empty(t, m.CourseProgress)
}
