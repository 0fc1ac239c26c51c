package repository

import (
	"time"

	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) Update(session *model.StudySession) error {
	return r.DB.Model(&model.StudySession{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"duration":  session.Duration,
			"subject":   session.Subject,
			"date":      session.Date,
			"completed": session.Completed,
		}).Error
}

func (r *StudySessionRepository) Delete(id string) error {
	return r.DB.Delete(&model.StudySession{}, "id = ?", id).Error
}

func (r *StudySessionRepository) FindByID(id string) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.First(&session, "id = ?", id).Error
	return &session, err
}

func (r *StudySessionRepository) FindByIDAndUserID(id string, userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

// FindByUserID returns all of a user's sessions, newest first.
func (r *StudySessionRepository) FindByUserID(userID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ?", userID).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) FindByUserIDAndSubject(userID uint, subject string) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) FindByUserIDInRange(userID uint, start, end time.Time) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").Find(&sessions).Error
	return sessions, err
}
