package model

import "time"

type AssignmentStatus string

const (
	AssignmentTodo  AssignmentStatus = "todo"
	AssignmentDoing AssignmentStatus = "doing"
	AssignmentDone  AssignmentStatus = "done"
)

type AssignmentPriority string

const (
	PriorityHigh   AssignmentPriority = "high"
	PriorityMedium AssignmentPriority = "medium"
	PriorityLow    AssignmentPriority = "low"
)

// Assignment is a course-level task. Status here is display-level; the
// authoritative per-student state lives on AssignmentSubmission.
// swagger:model Assignment
type Assignment struct {
	UUIDBase
	CourseID      string             `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title         string             `gorm:"size:255;not null" json:"title"`
	Description   string             `gorm:"type:text" json:"description"`
	DueDate       *time.Time         `gorm:"index" json:"dueDate,omitempty"`
	Status        AssignmentStatus   `gorm:"type:enum('todo','doing','done');default:'todo'" json:"status"`
	Priority      AssignmentPriority `gorm:"type:enum('high','medium','low');default:'medium'" json:"priority"`
	AttachmentURL string             `gorm:"size:512" json:"attachmentUrl,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
