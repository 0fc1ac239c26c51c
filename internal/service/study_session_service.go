package service

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"

	"gorm.io/gorm"
)

type StudySessionService struct {
	SessionRepo *repository.StudySessionRepository
}

func NewStudySessionService(sessionRepo *repository.StudySessionRepository) *StudySessionService {
	return &StudySessionService{SessionRepo: sessionRepo}
}

func (s *StudySessionService) CreateSession(session *model.StudySession) error {
	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	return s.SessionRepo.Create(session)
}

func (s *StudySessionService) UpdateSession(userID uint, session *model.StudySession) error {
	if _, err := s.getOwned(session.ID, userID); err != nil {
		return err
	}
	return s.SessionRepo.Update(session)
}

func (s *StudySessionService) DeleteSession(userID uint, id string) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return err
	}
	return s.SessionRepo.Delete(id)
}

func (s *StudySessionService) GetSession(userID uint, id string) (*model.StudySession, error) {
	return s.getOwned(id, userID)
}

func (s *StudySessionService) ListSessions(userID uint, subject string) ([]model.StudySession, error) {
	if subject != "" {
		return s.SessionRepo.FindByUserIDAndSubject(userID, subject)
	}
	return s.SessionRepo.FindByUserID(userID)
}

func (s *StudySessionService) ListSessionsInRange(userID uint, start, end time.Time) ([]model.StudySession, error) {
	return s.SessionRepo.FindByUserIDInRange(userID, start, end)
}

func (s *StudySessionService) getOwned(id string, userID uint) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	return session, err
}
