package model

type SubmissionStatus string

const (
	SubmissionNotStarted SubmissionStatus = "not_started"
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionGraded     SubmissionStatus = "graded"
)

// AssignmentSubmission is a student's completion record for one assignment.
// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	UUIDBase
	AssignmentID   string           `gorm:"index:idx_submission_pair,unique;type:varchar(36);not null" json:"assignmentId"`
	StudentID      uint             `gorm:"index:idx_submission_pair,unique;type:bigint unsigned;not null" json:"studentId"`
	Status         SubmissionStatus `gorm:"type:enum('not_started','in_progress','submitted','graded');default:'not_started'" json:"status"`
	EstimatedHours *float64         `json:"estimatedHours,omitempty"`
	ActualHours    *float64         `json:"actualHours,omitempty"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
