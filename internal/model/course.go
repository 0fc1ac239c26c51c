package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CreatedBy   uint   `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment links a student to a course; one row per pair.
type Enrollment struct {
	BaseModel
	UserID   uint   `gorm:"index:idx_enrollment_pair,unique;type:bigint unsigned;not null" json:"userId"`
	CourseID string `gorm:"index:idx_enrollment_pair,unique;type:varchar(36);not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
