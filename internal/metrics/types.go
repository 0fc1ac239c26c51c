package metrics

import "time"

// Plain value records consumed by the metric functions. The data-access layer
// builds these from persisted rows at call time; nothing in this package
// touches gorm, the clock, or the request cycle.

type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
)

type AssignmentStatus string

const (
	AssignmentTodo  AssignmentStatus = "todo"
	AssignmentDoing AssignmentStatus = "doing"
	AssignmentDone  AssignmentStatus = "done"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type SubmissionStatus string

const (
	SubmissionNotStarted SubmissionStatus = "not_started"
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionGraded     SubmissionStatus = "graded"
)

// Completed reports whether a submission counts as done for metric purposes.
func (s SubmissionStatus) Completed() bool {
	return s == SubmissionSubmitted || s == SubmissionGraded
}

// StudySession is one logged study interval. Only completed sessions
// participate in any aggregate.
type StudySession struct {
	ID        string    `json:"id"`
	Duration  int       `json:"duration"` // minutes
	Subject   string    `json:"subject"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// StudyGoal is a target number of hours for a subject inside a fixed,
// inclusive date window.
type StudyGoal struct {
	ID          string     `json:"id"`
	Subject     string     `json:"subject"`
	TargetHours float64    `json:"targetHours"`
	Period      GoalPeriod `json:"period"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
}

type Assignment struct {
	ID          string           `json:"id"`
	CourseID    string           `json:"courseId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	Status      AssignmentStatus `json:"status"`
	Priority    Priority         `json:"priority"`
}

type AssignmentSubmission struct {
	ID             string           `json:"id"`
	AssignmentID   string           `json:"assignmentId"`
	StudentID      string           `json:"studentId"`
	Status         SubmissionStatus `json:"status"`
	EstimatedHours *float64         `json:"estimatedHours,omitempty"`
	ActualHours    *float64         `json:"actualHours,omitempty"`
}

// SubjectTime pairs a subject with its aggregate study minutes.
type SubjectTime struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
}

type PriorityCount struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type WeekProgress struct {
	WeekStart string `json:"weekStart"` // ISO date of the Monday the week starts on
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type CourseCompletion struct {
	CourseID   string  `json:"courseId"`
	Completion float64 `json:"completion"` // percent
}

// AssignmentMetrics is the canonical aggregate fed to Interpret.
type AssignmentMetrics struct {
	CompletionRate       float64            `json:"completionRate"`
	PlanningAccuracy     float64            `json:"planningAccuracy"`
	PriorityDistribution PriorityCount      `json:"priorityDistribution"`
	WeeklyProgress       []WeekProgress     `json:"weeklyProgress"`
	CourseProgress       []CourseCompletion `json:"courseProgress"`
}

type PerformanceLevel string

const (
	LevelExcellent        PerformanceLevel = "excellent"
	LevelGood             PerformanceLevel = "good"
	LevelFair             PerformanceLevel = "fair"
	LevelNeedsImprovement PerformanceLevel = "needs-improvement"
)

type Interpretation struct {
	Level           PerformanceLevel `json:"level"`
	Message         string           `json:"message"`
	Recommendations []string         `json:"recommendations"`
}
