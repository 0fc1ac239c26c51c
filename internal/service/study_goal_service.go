package service

import (
	"errors"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"

	"gorm.io/gorm"
)

type StudyGoalService struct {
	GoalRepo *repository.StudyGoalRepository
}

func NewStudyGoalService(goalRepo *repository.StudyGoalRepository) *StudyGoalService {
	return &StudyGoalService{GoalRepo: goalRepo}
}

func (s *StudyGoalService) CreateGoal(goal *model.StudyGoal) error {
	if err := validateGoal(goal); err != nil {
		return err
	}
	return s.GoalRepo.Create(goal)
}

func (s *StudyGoalService) UpdateGoal(userID uint, goal *model.StudyGoal) error {
	if err := validateGoal(goal); err != nil {
		return err
	}
	if _, err := s.getOwned(goal.ID, userID); err != nil {
		return err
	}
	return s.GoalRepo.Update(goal)
}

func (s *StudyGoalService) DeleteGoal(userID uint, id string) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return err
	}
	return s.GoalRepo.Delete(id)
}

func (s *StudyGoalService) GetGoal(userID uint, id string) (*model.StudyGoal, error) {
	return s.getOwned(id, userID)
}

func (s *StudyGoalService) ListGoals(userID uint, period model.GoalPeriod) ([]model.StudyGoal, error) {
	if period != "" {
		return s.GoalRepo.FindByUserIDAndPeriod(userID, period)
	}
	return s.GoalRepo.FindByUserID(userID)
}

func validateGoal(goal *model.StudyGoal) error {
	if goal.TargetHours <= 0 {
		return util.ErrInvalidTargetHours
	}
	if goal.EndDate.Before(goal.StartDate) {
		return util.ErrInvalidDateRange
	}
	return nil
}

func (s *StudyGoalService) getOwned(id string, userID uint) (*model.StudyGoal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	return goal, err
}
