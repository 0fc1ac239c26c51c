package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Upsert writes the student's submission state, one row per
// (assignment, student) pair.
func (r *SubmissionRepository) Upsert(sub *model.AssignmentSubmission) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "estimated_hours", "actual_hours", "updated_at",
		}),
	}).Create(sub).Error
}

func (r *SubmissionRepository) FindByAssignmentAndStudent(assignmentID string, studentID uint) (*model.AssignmentSubmission, error) {
	var sub model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&sub).Error
	return &sub, err
}

func (r *SubmissionRepository) FindByStudentID(studentID uint) ([]model.AssignmentSubmission, error) {
	var subs []model.AssignmentSubmission
	err := r.DB.Where("student_id = ?", studentID).Order("created_at").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) FindByAssignmentID(assignmentID string) ([]model.AssignmentSubmission, error) {
	var subs []model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("created_at").Find(&subs).Error
	return subs, err
}
