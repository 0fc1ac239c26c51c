package metrics

import (
	"sort"
	"time"
)

// TotalStudyTime sums the duration of completed sessions, in minutes.
func TotalStudyTime(sessions []StudySession) int {
	total := 0
	for _, s := range sessions {
		if s.Completed {
			total += s.Duration
		}
	}
	return total
}

// StudyTimeBySubject groups completed study minutes by subject. Subjects
// with no completed minutes are absent from the map.
func StudyTimeBySubject(sessions []StudySession) map[string]int {
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.Completed {
			totals[s.Subject] += s.Duration
		}
	}
	return totals
}

// StudyTimeInRange sums completed study minutes with start <= date <= end,
// inclusive on both ends.
func StudyTimeInRange(sessions []StudySession, start, end time.Time) int {
	total := 0
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		total += s.Duration
	}
	return total
}

// TodayStudyTime sums completed minutes logged on now's calendar day.
func TodayStudyTime(sessions []StudySession, now time.Time) int {
	start := startOfDay(now)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return StudyTimeInRange(sessions, start, end)
}

// ThisWeekStudyTime sums completed minutes in the week containing now.
// Weeks start on Sunday and end the following Saturday at 23:59:59.999.
func ThisWeekStudyTime(sessions []StudySession, now time.Time) int {
	start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return StudyTimeInRange(sessions, start, end)
}

// ThisMonthStudyTime sums completed minutes in the calendar month
// containing now.
func ThisMonthStudyTime(sessions []StudySession, now time.Time) int {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return StudyTimeInRange(sessions, start, end)
}

// AverageSessionDuration returns the mean duration of completed sessions in
// minutes, or 0 when there are none.
func AverageSessionDuration(sessions []StudySession) float64 {
	total, count := 0, 0
	for _, s := range sessions {
		if s.Completed {
			total += s.Duration
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// MostStudiedSubject returns the subject with the largest completed-minute
// total, or nil when no session is completed. Ties are broken by the first
// subject encountered in the input order.
func MostStudiedSubject(sessions []StudySession) *SubjectTime {
	totals := StudyTimeBySubject(sessions)
	if len(totals) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(totals))
	var order []string
	for _, s := range sessions {
		if s.Completed && !seen[s.Subject] {
			seen[s.Subject] = true
			order = append(order, s.Subject)
		}
	}

	best := SubjectTime{Subject: order[0], Minutes: totals[order[0]]}
	for _, subject := range order[1:] {
		if totals[subject] > best.Minutes {
			best = SubjectTime{Subject: subject, Minutes: totals[subject]}
		}
	}
	return &best
}

// CompletionRate returns the percentage of sessions that are completed,
// over all sessions. Empty input yields 0.
func CompletionRate(sessions []StudySession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	completed := 0
	for _, s := range sessions {
		if s.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(sessions)) * 100
}

// StudyStreak counts consecutive calendar days ending at now's day (or the
// day before, if today has no session yet) with at least one completed
// session. Session dates are normalized to calendar days in now's location;
// a missing day breaks the streak.
func StudyStreak(sessions []StudySession, now time.Time) int {
	loc := now.Location()

	seen := make(map[string]bool)
	var days []time.Time
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		day := startOfDay(s.Date.In(loc))
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	hasToday := seen[today.Format("2006-01-02")]
	hasYesterday := seen[yesterday.Format("2006-01-02")]
	if !hasToday && !hasYesterday {
		return 0
	}

	cursor := today
	if !hasToday {
		cursor = yesterday
	}

	streak := 0
	for _, day := range days {
		if day.Equal(cursor) {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		} else if day.Before(cursor) {
			// gap found, streak broken
			break
		}
	}
	return streak
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
