package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(duration int, subject string, date time.Time, completed bool) StudySession {
	return StudySession{
		ID:        "s-" + date.Format("20060102-150405"),
		Duration:  duration,
		Subject:   subject,
		Date:      date,
		Completed: completed,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalStudyTime(t *testing.T) {
	assert.Equal(t, 0, TotalStudyTime(nil))
	assert.Equal(t, 0, TotalStudyTime([]StudySession{
		session(30, "Math", day(2024, 1, 1), false),
	}))

	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 1), true),
		session(45, "Physics", day(2024, 1, 2), true),
		session(20, "Math", day(2024, 1, 3), false),
	}
	assert.Equal(t, 75, TotalStudyTime(sessions))
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(nil))

	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 1), true),
		session(45, "Physics", day(2024, 1, 2), true),
		session(20, "Math", day(2024, 1, 3), false),
	}
	assert.InDelta(t, 66.67, CompletionRate(sessions), 0.01)

	all := []StudySession{session(10, "Math", day(2024, 1, 1), true)}
	assert.Equal(t, 100.0, CompletionRate(all))
}

func TestStudyTimeBySubject(t *testing.T) {
	assert.Empty(t, StudyTimeBySubject(nil))

	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 1), true),
		session(45, "Physics", day(2024, 1, 2), true),
		session(15, "Math", day(2024, 1, 3), true),
		session(60, "Chemistry", day(2024, 1, 4), false),
	}
	bySubject := StudyTimeBySubject(sessions)

	assert.Equal(t, map[string]int{"Math": 45, "Physics": 45}, bySubject)
	// incomplete-only subjects must be absent, not zero
	_, ok := bySubject["Chemistry"]
	assert.False(t, ok)

	// grouped minutes always sum back to the total
	sum := 0
	for _, minutes := range bySubject {
		sum += minutes
	}
	assert.Equal(t, TotalStudyTime(sessions), sum)
}

func TestStudyTimeInRange_InclusiveBounds(t *testing.T) {
	start := day(2024, 1, 10)
	end := day(2024, 1, 20)
	sessions := []StudySession{
		session(10, "Math", day(2024, 1, 9), true),  // before
		session(20, "Math", start, true),            // on start
		session(30, "Math", day(2024, 1, 15), true), // inside
		session(40, "Math", end, true),              // on end
		session(50, "Math", day(2024, 1, 21), true), // after
		session(60, "Math", day(2024, 1, 15), false),
	}
	assert.Equal(t, 90, StudyTimeInRange(sessions, start, end))
}

func TestTodayStudyTime(t *testing.T) {
	now := time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC)
	sessions := []StudySession{
		session(25, "Math", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), true),
		session(35, "Math", time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC), true),
		session(45, "Math", day(2024, 1, 4), true),
		session(55, "Math", day(2024, 1, 6).Add(time.Second), true),
	}
	assert.Equal(t, 60, TodayStudyTime(sessions, now))
}

func TestThisWeekStudyTime(t *testing.T) {
	// Wednesday; week runs Sunday Jan 7 through Saturday Jan 13
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	sessions := []StudySession{
		session(10, "Math", day(2024, 1, 7), true),                            // Sunday start
		session(20, "Math", time.Date(2024, 1, 13, 23, 0, 0, 0, time.UTC), true), // Saturday end
		session(30, "Math", day(2024, 1, 6), true),                            // previous week
		session(40, "Math", day(2024, 1, 14), true),                           // next week
	}
	assert.Equal(t, 30, ThisWeekStudyTime(sessions, now))
}

func TestThisMonthStudyTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	sessions := []StudySession{
		session(10, "Math", day(2024, 1, 1), true),
		session(20, "Math", time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), true),
		session(30, "Math", day(2023, 12, 31), true),
		session(40, "Math", day(2024, 2, 1), true),
	}
	assert.Equal(t, 30, ThisMonthStudyTime(sessions, now))
}

func TestAverageSessionDuration(t *testing.T) {
	assert.Equal(t, 0.0, AverageSessionDuration(nil))
	assert.Equal(t, 0.0, AverageSessionDuration([]StudySession{
		session(30, "Math", day(2024, 1, 1), false),
	}))

	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 1), true),
		session(45, "Physics", day(2024, 1, 2), true),
		session(99, "Math", day(2024, 1, 3), false),
	}
	assert.InDelta(t, 37.5, AverageSessionDuration(sessions), 0.001)
}

func TestMostStudiedSubject(t *testing.T) {
	assert.Nil(t, MostStudiedSubject(nil))
	assert.Nil(t, MostStudiedSubject([]StudySession{
		session(30, "Math", day(2024, 1, 1), false),
	}))

	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 1), true),
		session(45, "Physics", day(2024, 1, 2), true),
		session(30, "Physics", day(2024, 1, 3), true),
	}
	top := MostStudiedSubject(sessions)
	require.NotNil(t, top)
	assert.Equal(t, "Physics", top.Subject)
	assert.Equal(t, 75, top.Minutes)
}

func TestMostStudiedSubject_TieKeepsFirstEncountered(t *testing.T) {
	sessions := []StudySession{
		session(40, "History", day(2024, 1, 1), true),
		session(40, "Biology", day(2024, 1, 2), true),
	}
	top := MostStudiedSubject(sessions)
	require.NotNil(t, top)
	assert.Equal(t, 40, top.Minutes)
	assert.Equal(t, "History", top.Subject)
}

func TestStudyStreak(t *testing.T) {
	now := time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, StudyStreak(nil, now))
	})

	t.Run("three consecutive days", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", day(2024, 1, 5), true),
			session(30, "Math", day(2024, 1, 4), true),
			session(30, "Math", day(2024, 1, 3), true),
		}
		assert.Equal(t, 3, StudyStreak(sessions, now))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", day(2024, 1, 5), true),
			session(30, "Math", day(2024, 1, 3), true),
		}
		assert.Equal(t, 1, StudyStreak(sessions, now))
	})

	t.Run("anchored at yesterday when today has no session", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", day(2024, 1, 4), true),
			session(30, "Math", day(2024, 1, 3), true),
		}
		assert.Equal(t, 2, StudyStreak(sessions, now))
	})

	t.Run("zero when neither today nor yesterday studied", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", day(2024, 1, 2), true),
			session(30, "Math", day(2024, 1, 1), true),
		}
		assert.Equal(t, 0, StudyStreak(sessions, now))
	})

	t.Run("incomplete sessions do not extend the streak", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", day(2024, 1, 5), true),
			session(30, "Math", day(2024, 1, 4), false),
			session(30, "Math", day(2024, 1, 3), true),
		}
		assert.Equal(t, 1, StudyStreak(sessions, now))
	})

	t.Run("multiple sessions per day count once", func(t *testing.T) {
		sessions := []StudySession{
			session(30, "Math", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), true),
			session(30, "Physics", time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC), true),
			session(30, "Math", day(2024, 1, 4), true),
		}
		assert.Equal(t, 2, StudyStreak(sessions, now))
	})
}

// Pure-function property: a second call over the same slice returns the same
// result and leaves the input untouched.
func TestSessionAggregatesAreIdempotent(t *testing.T) {
	now := time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)
	sessions := []StudySession{
		session(30, "Math", day(2024, 1, 5), true),
		session(45, "Physics", day(2024, 1, 4), true),
		session(20, "Math", day(2024, 1, 3), false),
	}
	snapshot := make([]StudySession, len(sessions))
	copy(snapshot, sessions)

	assert.Equal(t, TotalStudyTime(sessions), TotalStudyTime(sessions))
	assert.Equal(t, StudyTimeBySubject(sessions), StudyTimeBySubject(sessions))
	assert.Equal(t, StudyStreak(sessions, now), StudyStreak(sessions, now))
	assert.Equal(t, snapshot, sessions)
}
