package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]interface{}{
			"title":       course.Title,
			"description": course.Description,
		}).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Delete(&model.Course{}, "id = ?", id).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at").Find(&courses).Error
	return courses, err
}

// FindEnrolledByUserID returns the courses a student is enrolled in,
// ordered by enrollment time.
func (r *CourseRepository) FindEnrolledByUserID(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL", userID).
		Order("enrollments.created_at").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Enroll(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *CourseRepository) IsEnrolled(userID uint, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *CourseRepository) Unenroll(userID uint, courseID string) error {
	return r.DB.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&model.Enrollment{}).Error
}
