package model

import "time"

// StudySession is one logged study interval. Incomplete sessions are kept
// for display but excluded from every metric aggregate.
// swagger:model StudySession
type StudySession struct {
	UUIDBase
	UserID    uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Duration  int       `gorm:"not null" json:"duration"` // minutes
	Subject   string    `gorm:"size:100;not null" json:"subject"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Completed bool      `gorm:"default:false" json:"completed"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
