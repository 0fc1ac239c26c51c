package model

import "time"

type GoalPeriod string

const (
	GoalDaily   GoalPeriod = "daily"
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
)

// swagger:model StudyGoal
type StudyGoal struct {
	UUIDBase
	UserID      uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Subject     string     `gorm:"size:100;not null" json:"subject"`
	TargetHours float64    `gorm:"not null" json:"targetHours"`
	Period      GoalPeriod `gorm:"type:enum('daily','weekly','monthly');not null" json:"period"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     time.Time  `gorm:"not null" json:"endDate"` // inclusive
}

func (StudyGoal) TableName() string {
	return "study_goals"
}
