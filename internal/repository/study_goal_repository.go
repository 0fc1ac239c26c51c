package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

type StudyGoalRepository struct {
	DB *gorm.DB
}

func NewStudyGoalRepository(db *gorm.DB) *StudyGoalRepository {
	return &StudyGoalRepository{DB: db}
}

func (r *StudyGoalRepository) Create(goal *model.StudyGoal) error {
	return r.DB.Create(goal).Error
}

func (r *StudyGoalRepository) Update(goal *model.StudyGoal) error {
	return r.DB.Model(&model.StudyGoal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"subject":      goal.Subject,
			"target_hours": goal.TargetHours,
			"period":       goal.Period,
			"start_date":   goal.StartDate,
			"end_date":     goal.EndDate,
		}).Error
}

func (r *StudyGoalRepository) Delete(id string) error {
	return r.DB.Delete(&model.StudyGoal{}, "id = ?", id).Error
}

func (r *StudyGoalRepository) FindByID(id string) (*model.StudyGoal, error) {
	var goal model.StudyGoal
	err := r.DB.First(&goal, "id = ?", id).Error
	return &goal, err
}

func (r *StudyGoalRepository) FindByIDAndUserID(id string, userID uint) (*model.StudyGoal, error) {
	var goal model.StudyGoal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}

func (r *StudyGoalRepository) FindByUserID(userID uint) ([]model.StudyGoal, error) {
	var goals []model.StudyGoal
	err := r.DB.Where("user_id = ?", userID).Order("start_date").Find(&goals).Error
	return goals, err
}

func (r *StudyGoalRepository) FindByUserIDAndPeriod(userID uint, period model.GoalPeriod) ([]model.StudyGoal, error) {
	var goals []model.StudyGoal
	err := r.DB.Where("user_id = ? AND period = ?", userID, period).Order("start_date").Find(&goals).Error
	return goals, err
}
