package controller

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyGoalController struct {
	GoalService    *service.StudyGoalService
	MetricsService *service.MetricsService
}

func NewStudyGoalController(goalService *service.StudyGoalService, metricsService *service.MetricsService) *StudyGoalController {
	return &StudyGoalController{
		GoalService:    goalService,
		MetricsService: metricsService,
	}
}

// swagger:model StudyGoalRequest
type StudyGoalRequest struct {
	Subject     string    `json:"subject" binding:"required"`
	TargetHours float64   `json:"targetHours" binding:"required"`
	Period      string    `json:"period" binding:"required,oneof=daily weekly monthly"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
}

func (r *StudyGoalRequest) toModel(userID uint) *model.StudyGoal {
	return &model.StudyGoal{
		UserID:      userID,
		Subject:     r.Subject,
		TargetHours: r.TargetHours,
		Period:      model.GoalPeriod(r.Period),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// ListGoals godoc
// @Summary List the caller's study goals
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   period query string false "daily, weekly or monthly"
// @Success 200 {object} util.Response{data=[]model.StudyGoal}
// @Router /api/study-goals [get]
func (c *StudyGoalController) ListGoals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.ListGoals(claims.UserID, model.GoalPeriod(ctx.Query("period")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goals)
}

// GetGoal godoc
// @Summary One study goal
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "goal id"
// @Success 200 {object} util.Response{data=model.StudyGoal}
// @Failure 404 {object} util.Response
// @Router /api/study-goals/{id} [get]
func (c *StudyGoalController) GetGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goal, err := c.GoalService.GetGoal(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goal)
}

// GetGoalProgress godoc
// @Summary Goal with its completion percentage
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "goal id"
// @Success 200 {object} util.Response{data=service.GoalProgress}
// @Failure 404 {object} util.Response
// @Router /api/study-goals/{id}/progress [get]
func (c *StudyGoalController) GetGoalProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.MetricsService.GetGoalProgress(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, progress)
}

// CreateGoal godoc
// @Summary Create a study goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StudyGoalRequest true "goal payload"
// @Success 201 {object} util.Response{data=model.StudyGoal}
// @Failure 400 {object} util.Response
// @Router /api/study-goals [post]
func (c *StudyGoalController) CreateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudyGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := req.toModel(claims.UserID)
	if err := c.GoalService.CreateGoal(goal); err != nil {
		if errors.Is(err, util.ErrInvalidTargetHours) || errors.Is(err, util.ErrInvalidDateRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, goal)
}

// UpdateGoal godoc
// @Summary Update a study goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path string true "goal id"
// @Param   body body StudyGoalRequest true "goal payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-goals/{id} [put]
func (c *StudyGoalController) UpdateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudyGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal := req.toModel(claims.UserID)
	goal.ID = ctx.Param("id")

	if err := c.GoalService.UpdateGoal(claims.UserID, goal); err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidTargetHours), errors.Is(err, util.ErrInvalidDateRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, nil)
}

// DeleteGoal godoc
// @Summary Delete a study goal
// @Tags goals
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "goal id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-goals/{id} [delete]
func (c *StudyGoalController) DeleteGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.GoalService.DeleteGoal(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, nil)
}
