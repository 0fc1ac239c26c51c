package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mathGoal(targetHours float64) StudyGoal {
	return StudyGoal{
		ID:          "g1",
		Subject:     "Math",
		TargetHours: targetHours,
		Period:      PeriodWeekly,
		StartDate:   day(2024, 1, 1),
		EndDate:     day(2024, 1, 7),
	}
}

func TestGoalProgress(t *testing.T) {
	goal := mathGoal(10)

	t.Run("no sessions", func(t *testing.T) {
		assert.Equal(t, 0.0, GoalProgress(goal, nil))
	})

	t.Run("capped at 100 when target exceeded", func(t *testing.T) {
		// 480 + 180 = 660 minutes (11h) against a 10h target
		sessions := []StudySession{
			session(480, "Math", day(2024, 1, 2), true),
			session(180, "Math", day(2024, 1, 5), true),
		}
		assert.Equal(t, 100.0, GoalProgress(goal, sessions))
	})

	t.Run("partial progress", func(t *testing.T) {
		sessions := []StudySession{
			session(300, "Math", day(2024, 1, 3), true),
		}
		assert.InDelta(t, 50.0, GoalProgress(goal, sessions), 0.001)
	})

	t.Run("other subjects excluded", func(t *testing.T) {
		sessions := []StudySession{
			session(600, "Physics", day(2024, 1, 3), true),
		}
		assert.Equal(t, 0.0, GoalProgress(goal, sessions))
	})

	t.Run("sessions outside the window excluded, bounds inclusive", func(t *testing.T) {
		sessions := []StudySession{
			session(60, "Math", day(2023, 12, 31), true),
			session(60, "Math", day(2024, 1, 1), true),
			session(60, "Math", day(2024, 1, 7), true),
			session(60, "Math", day(2024, 1, 8), true),
		}
		assert.InDelta(t, 20.0, GoalProgress(goal, sessions), 0.001)
	})

	t.Run("incomplete sessions excluded", func(t *testing.T) {
		sessions := []StudySession{
			session(600, "Math", day(2024, 1, 3), false),
		}
		assert.Equal(t, 0.0, GoalProgress(goal, sessions))
	})

	t.Run("non-positive target yields zero", func(t *testing.T) {
		sessions := []StudySession{
			session(60, "Math", day(2024, 1, 3), true),
		}
		assert.Equal(t, 0.0, GoalProgress(mathGoal(0), sessions))
		assert.Equal(t, 0.0, GoalProgress(mathGoal(-2), sessions))
	})
}
