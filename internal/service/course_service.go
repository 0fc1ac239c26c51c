package service

import (
	"errors"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) CreateCourse(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *CourseService) UpdateCourse(course *model.Course) error {
	if _, err := s.getCourse(course.ID); err != nil {
		return err
	}
	return s.CourseRepo.Update(course)
}

func (s *CourseService) DeleteCourse(id string) error {
	if _, err := s.getCourse(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}

func (s *CourseService) GetCourse(id string) (*model.Course, error) {
	return s.getCourse(id)
}

func (s *CourseService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) ListEnrolled(userID uint) ([]model.Course, error) {
	return s.CourseRepo.FindEnrolledByUserID(userID)
}

func (s *CourseService) Enroll(userID uint, courseID string) error {
	if _, err := s.getCourse(courseID); err != nil {
		return err
	}

	enrolled, err := s.CourseRepo.IsEnrolled(userID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		return util.ErrAlreadyEnrolled
	}

	return s.CourseRepo.Enroll(&model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	})
}

func (s *CourseService) Unenroll(userID uint, courseID string) error {
	enrolled, err := s.CourseRepo.IsEnrolled(userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return util.ErrCourseNotFound
	}
	return s.CourseRepo.Unenroll(userID, courseID)
}

func (s *CourseService) getCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}
