package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	CourseRepo     *repository.CourseRepository
	StorageService *StorageService
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	courseRepo *repository.CourseRepository,
	storageService *StorageService,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		CourseRepo:     courseRepo,
		StorageService: storageService,
	}
}

func (s *AssignmentService) CreateAssignment(assignment *model.Assignment) error {
	_, err := s.CourseRepo.FindByID(assignment.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	} else if err != nil {
		return err
	}
	return s.AssignmentRepo.Create(assignment)
}

func (s *AssignmentService) UpdateAssignment(assignment *model.Assignment) error {
	if _, err := s.getAssignment(assignment.ID); err != nil {
		return err
	}
	return s.AssignmentRepo.Update(assignment)
}

func (s *AssignmentService) DeleteAssignment(id string) error {
	if _, err := s.getAssignment(id); err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(id)
}

func (s *AssignmentService) GetAssignment(id string) (*model.Assignment, error) {
	return s.getAssignment(id)
}

func (s *AssignmentService) ListByCourse(courseID string) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindByCourseID(courseID)
}

// ListForUser returns the assignments across all courses the user is
// enrolled in.
func (s *AssignmentService) ListForUser(userID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.FindForUser(userID)
}

// UploadAttachment stores the file and records its URL on the assignment.
func (s *AssignmentService) UploadAttachment(ctx context.Context, assignmentID string, file *multipart.FileHeader) (string, error) {
	assignment, err := s.getAssignment(assignmentID)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := "attachments/" + time.Now().Format("20060102150405") + "_" + uuid.New().String()[:8] + ext

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	assignment.AttachmentURL = url
	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return "", err
	}
	return url, nil
}

// UpsertSubmission writes the student's state for one assignment. The
// pair (assignment, student) is unique; repeated calls overwrite.
func (s *AssignmentService) UpsertSubmission(studentID uint, sub *model.AssignmentSubmission) error {
	if _, err := s.getAssignment(sub.AssignmentID); err != nil {
		return err
	}
	sub.StudentID = studentID
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	return s.SubmissionRepo.Upsert(sub)
}

func (s *AssignmentService) GetSubmission(studentID uint, assignmentID string) (*model.AssignmentSubmission, error) {
	sub, err := s.SubmissionRepo.FindByAssignmentAndStudent(assignmentID, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	return sub, err
}

func (s *AssignmentService) ListSubmissions(studentID uint) ([]model.AssignmentSubmission, error) {
	return s.SubmissionRepo.FindByStudentID(studentID)
}

func (s *AssignmentService) getAssignment(id string) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	return assignment, err
}
