package controller

import (
	"time"

	"study_planner_backend/internal/metrics"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	MetricsService *service.MetricsService
}

func NewMetricsController(metricsService *service.MetricsService) *MetricsController {
	return &MetricsController{MetricsService: metricsService}
}

// GetStudyMetrics godoc
// @Summary Session-side study metrics
// @Description Totals, per-subject time, streak and goal progress for the caller
// @Tags metrics
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudyMetrics}
// @Router /api/metrics/study [get]
func (c *MetricsController) GetStudyMetrics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	m, err := c.MetricsService.GetStudyMetrics(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// GetAssignmentMetrics godoc
// @Summary Assignment-side metrics with interpretation
// @Description Completion rate, planning accuracy, weekly and per-course progress
// @Tags metrics
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/metrics/assignments [get]
func (c *MetricsController) GetAssignmentMetrics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	m, err := c.MetricsService.GetAssignmentMetrics(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"metrics":        m,
		"interpretation": metrics.Interpret(*m),
	})
}

// GetDashboard godoc
// @Summary Combined metrics dashboard
// @Description Study and assignment metrics plus interpretation, cached for a minute
// @Tags metrics
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *MetricsController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.MetricsService.GetDashboard(ctx.Request.Context(), claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
