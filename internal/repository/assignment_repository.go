package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Model(&model.Assignment{}).
		Where("id = ?", assignment.ID).
		Updates(map[string]interface{}{
			"title":          assignment.Title,
			"description":    assignment.Description,
			"due_date":       assignment.DueDate,
			"status":         assignment.Status,
			"priority":       assignment.Priority,
			"attachment_url": assignment.AttachmentURL,
		}).Error
}

func (r *AssignmentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Assignment{}, "id = ?", id).Error
}

func (r *AssignmentRepository) FindByID(id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, "id = ?", id).Error
	return &assignment, err
}

func (r *AssignmentRepository) FindByCourseID(courseID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("course_id = ?", courseID).Order("due_date").Find(&assignments).Error
	return assignments, err
}

// FindForUser returns the assignments of every course the user is
// enrolled in, ordered by due date with undated ones last.
func (r *AssignmentRepository) FindForUser(userID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.course_id = assignments.course_id").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL", userID).
		Order("assignments.due_date IS NULL, assignments.due_date").
		Find(&assignments).Error
	return assignments, err
}
