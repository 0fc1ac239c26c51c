package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"study_planner_backend/internal/metrics"
	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dashboardCacheKeyPrefix = "dashboard:"
	dashboardCacheTTL       = 60 * time.Second
)

type MetricsService struct {
	SessionRepo    *repository.StudySessionRepository
	GoalRepo       *repository.StudyGoalRepository
	AssignmentRepo *repository.AssignmentRepository
	SubmissionRepo *repository.SubmissionRepository
	Redis          *redis.Client
}

func NewMetricsService(
	sessionRepo *repository.StudySessionRepository,
	goalRepo *repository.StudyGoalRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	rdb *redis.Client,
) *MetricsService {
	return &MetricsService{
		SessionRepo:    sessionRepo,
		GoalRepo:       goalRepo,
		AssignmentRepo: assignmentRepo,
		SubmissionRepo: submissionRepo,
		Redis:          rdb,
	}
}

// GoalProgress pairs a goal with its completion percentage.
type GoalProgress struct {
	Goal     model.StudyGoal `json:"goal"`
	Progress float64         `json:"progress"`
}

// StudyMetrics is the session-side aggregate for one user.
type StudyMetrics struct {
	TotalStudyTime         int                  `json:"totalStudyTime"`
	TodayStudyTime         int                  `json:"todayStudyTime"`
	WeekStudyTime          int                  `json:"weekStudyTime"`
	MonthStudyTime         int                  `json:"monthStudyTime"`
	TimeBySubject          map[string]int       `json:"timeBySubject"`
	MostStudiedSubject     *metrics.SubjectTime `json:"mostStudiedSubject"`
	CompletionRate         float64              `json:"completionRate"`
	AverageSessionDuration float64              `json:"averageSessionDuration"`
	StudyStreak            int                  `json:"studyStreak"`
	Goals                  []GoalProgress       `json:"goals"`
}

// Dashboard is the full metrics payload served to the frontend.
type Dashboard struct {
	Study          StudyMetrics              `json:"study"`
	Assignments    metrics.AssignmentMetrics `json:"assignments"`
	Interpretation metrics.Interpretation    `json:"interpretation"`
	GeneratedAt    time.Time                 `json:"generatedAt"`
}

// toMetricSessions converts persisted rows into the plain records the
// metric functions consume.
func toMetricSessions(rows []model.StudySession) []metrics.StudySession {
	out := make([]metrics.StudySession, 0, len(rows))
	for _, r := range rows {
		out = append(out, metrics.StudySession{
			ID:        r.ID,
			Duration:  r.Duration,
			Subject:   r.Subject,
			Date:      r.Date,
			Completed: r.Completed,
		})
	}
	return out
}

func toMetricGoal(row model.StudyGoal) metrics.StudyGoal {
	return metrics.StudyGoal{
		ID:          row.ID,
		Subject:     row.Subject,
		TargetHours: row.TargetHours,
		Period:      metrics.GoalPeriod(row.Period),
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
	}
}

func toMetricAssignments(rows []model.Assignment) []metrics.Assignment {
	out := make([]metrics.Assignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, metrics.Assignment{
			ID:          r.ID,
			CourseID:    r.CourseID,
			Title:       r.Title,
			Description: r.Description,
			DueDate:     r.DueDate,
			Status:      metrics.AssignmentStatus(r.Status),
			Priority:    metrics.Priority(r.Priority),
		})
	}
	return out
}

func toMetricSubmissions(rows []model.AssignmentSubmission) []metrics.AssignmentSubmission {
	out := make([]metrics.AssignmentSubmission, 0, len(rows))
	for _, r := range rows {
		out = append(out, metrics.AssignmentSubmission{
			ID:             r.ID,
			AssignmentID:   r.AssignmentID,
			StudentID:      strconv.FormatUint(uint64(r.StudentID), 10),
			Status:         metrics.SubmissionStatus(r.Status),
			EstimatedHours: r.EstimatedHours,
			ActualHours:    r.ActualHours,
		})
	}
	return out
}

// GetStudyMetrics computes the session aggregate as of now.
func (s *MetricsService) GetStudyMetrics(userID uint, now time.Time) (*StudyMetrics, error) {
	rows, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	goalRows, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	sessions := toMetricSessions(rows)

	goals := make([]GoalProgress, 0, len(goalRows))
	for _, g := range goalRows {
		goals = append(goals, GoalProgress{
			Goal:     g,
			Progress: metrics.GoalProgress(toMetricGoal(g), sessions),
		})
	}

	return &StudyMetrics{
		TotalStudyTime:         metrics.TotalStudyTime(sessions),
		TodayStudyTime:         metrics.TodayStudyTime(sessions, now),
		WeekStudyTime:          metrics.ThisWeekStudyTime(sessions, now),
		MonthStudyTime:         metrics.ThisMonthStudyTime(sessions, now),
		TimeBySubject:          metrics.StudyTimeBySubject(sessions),
		MostStudiedSubject:     metrics.MostStudiedSubject(sessions),
		CompletionRate:         metrics.CompletionRate(sessions),
		AverageSessionDuration: metrics.AverageSessionDuration(sessions),
		StudyStreak:            metrics.StudyStreak(sessions, now),
		Goals:                  goals,
	}, nil
}

// GetAssignmentMetrics computes the assignment aggregate for one user.
func (s *MetricsService) GetAssignmentMetrics(userID uint) (*metrics.AssignmentMetrics, error) {
	assignmentRows, err := s.AssignmentRepo.FindForUser(userID)
	if err != nil {
		return nil, err
	}
	submissionRows, err := s.SubmissionRepo.FindByStudentID(userID)
	if err != nil {
		return nil, err
	}

	m := metrics.ComputeAssignmentMetrics(
		toMetricAssignments(assignmentRows),
		toMetricSubmissions(submissionRows),
	)
	return &m, nil
}

func (s *MetricsService) GetGoalProgress(userID uint, goalID string) (*GoalProgress, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &GoalProgress{
		Goal:     *goal,
		Progress: metrics.GoalProgress(toMetricGoal(*goal), toMetricSessions(rows)),
	}, nil
}

// GetDashboard serves the combined payload, cached in Redis for a minute.
func (s *MetricsService) GetDashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	cacheKey := fmt.Sprintf("%s%d", dashboardCacheKeyPrefix, userID)

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var dashboard Dashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				monitoring.DashboardCacheHits.WithLabelValues("hit").Inc()
				return &dashboard, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("Dashboard cache read failed", zap.Error(err))
		}
		monitoring.DashboardCacheHits.WithLabelValues("miss").Inc()
	}

	study, err := s.GetStudyMetrics(userID, now)
	if err != nil {
		return nil, err
	}
	assignment, err := s.GetAssignmentMetrics(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Study:          *study,
		Assignments:    *assignment,
		Interpretation: metrics.Interpret(*assignment),
		GeneratedAt:    now,
	}

	if s.Redis != nil {
		payload, err := json.Marshal(dashboard)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("Dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return dashboard, nil
}

// InvalidateDashboard drops the cached payload after a write that
// changes any metric input.
func (s *MetricsService) InvalidateDashboard(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	cacheKey := fmt.Sprintf("%s%d", dashboardCacheKeyPrefix, userID)
	if err := s.Redis.Del(ctx, cacheKey).Err(); err != nil {
		logger.Log.Warn("Dashboard cache invalidation failed", zap.Error(err))
	}
}
