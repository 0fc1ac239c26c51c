package service

import (
	"testing"
	"time"

	"study_planner_backend/internal/metrics"
	"study_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMetricSessions(t *testing.T) {
	date := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	rows := []model.StudySession{
		{
			UUIDBase:  model.UUIDBase{ID: "s1"},
			UserID:    7,
			Duration:  45,
			Subject:   "math",
			Date:      date,
			Completed: true,
		},
		{
			UUIDBase:  model.UUIDBase{ID: "s2"},
			UserID:    7,
			Duration:  30,
			Subject:   "physics",
			Date:      date.AddDate(0, 0, 1),
			Completed: false,
		},
	}

	out := toMetricSessions(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "s1", out[0].ID)
	assert.Equal(t, 45, out[0].Duration)
	assert.Equal(t, "math", out[0].Subject)
	assert.True(t, out[0].Date.Equal(date))
	assert.True(t, out[0].Completed)
	assert.False(t, out[1].Completed)
}

func TestToMetricSessionsEmpty(t *testing.T) {
	out := toMetricSessions(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestToMetricGoal(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	row := model.StudyGoal{
		UUIDBase:    model.UUIDBase{ID: "g1"},
		UserID:      7,
		Subject:     "math",
		TargetHours: 10,
		Period:      model.GoalMonthly,
		StartDate:   start,
		EndDate:     end,
	}

	out := toMetricGoal(row)
	assert.Equal(t, "g1", out.ID)
	assert.Equal(t, "math", out.Subject)
	assert.Equal(t, 10.0, out.TargetHours)
	assert.Equal(t, metrics.PeriodMonthly, out.Period)
	assert.True(t, out.StartDate.Equal(start))
	assert.True(t, out.EndDate.Equal(end))
}

func TestToMetricAssignments(t *testing.T) {
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.Assignment{
		{
			UUIDBase: model.UUIDBase{ID: "a1"},
			CourseID: "c1",
			Title:    "Problem set 1",
			DueDate:  &due,
			Status:   model.AssignmentDone,
			Priority: model.PriorityHigh,
		},
		{
			UUIDBase: model.UUIDBase{ID: "a2"},
			CourseID: "c2",
			Title:    "Essay",
			Status:   model.AssignmentTodo,
			Priority: model.PriorityLow,
		},
	}

	out := toMetricAssignments(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, "c1", out[0].CourseID)
	require.NotNil(t, out[0].DueDate)
	assert.True(t, out[0].DueDate.Equal(due))
	assert.Equal(t, metrics.AssignmentDone, out[0].Status)
	assert.Equal(t, metrics.PriorityHigh, out[0].Priority)

	assert.Nil(t, out[1].DueDate)
	assert.Equal(t, metrics.PriorityLow, out[1].Priority)
}

func TestToMetricSubmissions(t *testing.T) {
	est := 4.0
	act := 5.0
	rows := []model.AssignmentSubmission{
		{
			UUIDBase:       model.UUIDBase{ID: "sub1"},
			AssignmentID:   "a1",
			StudentID:      42,
			Status:         model.SubmissionGraded,
			EstimatedHours: &est,
			ActualHours:    &act,
		},
		{
			UUIDBase:     model.UUIDBase{ID: "sub2"},
			AssignmentID: "a2",
			StudentID:    42,
			Status:       model.SubmissionInProgress,
		},
	}

	out := toMetricSubmissions(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "sub1", out[0].ID)
	assert.Equal(t, "a1", out[0].AssignmentID)
	assert.Equal(t, "42", out[0].StudentID)
	assert.Equal(t, metrics.SubmissionGraded, out[0].Status)
	require.NotNil(t, out[0].EstimatedHours)
	assert.Equal(t, 4.0, *out[0].EstimatedHours)

	assert.Equal(t, metrics.SubmissionInProgress, out[1].Status)
	assert.Nil(t, out[1].EstimatedHours)
	assert.Nil(t, out[1].ActualHours)
}

// The converted records must feed the metric functions end to end.
func TestConvertedRowsProduceMetrics(t *testing.T) {
	day := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	rows := []model.StudySession{
		{UUIDBase: model.UUIDBase{ID: "s1"}, Duration: 60, Subject: "math", Date: day, Completed: true},
		{UUIDBase: model.UUIDBase{ID: "s2"}, Duration: 30, Subject: "math", Date: day, Completed: false},
	}

	sessions := toMetricSessions(rows)
	assert.Equal(t, 60, metrics.TotalStudyTime(sessions))
	assert.InDelta(t, 50.0, metrics.CompletionRate(sessions), 0.001)
}
