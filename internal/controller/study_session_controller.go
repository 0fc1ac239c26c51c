package controller

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudySessionController struct {
	SessionService *service.StudySessionService
	MetricsService *service.MetricsService
}

func NewStudySessionController(sessionService *service.StudySessionService, metricsService *service.MetricsService) *StudySessionController {
	return &StudySessionController{
		SessionService: sessionService,
		MetricsService: metricsService,
	}
}

// swagger:model StudySessionRequest
type StudySessionRequest struct {
	Duration  int       `json:"duration" binding:"required,gt=0"`
	Subject   string    `json:"subject" binding:"required"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// ListSessions godoc
// @Summary List the caller's study sessions
// @Tags sessions
// @Produce  json
// @Security BearerAuth
// @Param   subject query string false "filter by subject"
// @Success 200 {object} util.Response{data=[]model.StudySession}
// @Router /api/study-sessions [get]
func (c *StudySessionController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.SessionService.ListSessions(claims.UserID, ctx.Query("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// GetSession godoc
// @Summary One study session
// @Tags sessions
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "session id"
// @Success 200 {object} util.Response{data=model.StudySession}
// @Failure 404 {object} util.Response
// @Router /api/study-sessions/{id} [get]
func (c *StudySessionController) GetSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.SessionService.GetSession(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

// CreateSession godoc
// @Summary Log a study session
// @Tags sessions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StudySessionRequest true "session payload"
// @Success 201 {object} util.Response{data=model.StudySession}
// @Failure 400 {object} util.Response
// @Router /api/study-sessions [post]
func (c *StudySessionController) CreateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session := &model.StudySession{
		UserID:    claims.UserID,
		Duration:  req.Duration,
		Subject:   req.Subject,
		Date:      req.Date,
		Completed: req.Completed,
	}

	if err := c.SessionService.CreateSession(session); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Created(ctx, session)
}

// UpdateSession godoc
// @Summary Update a study session
// @Tags sessions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path string true "session id"
// @Param   body body StudySessionRequest true "session payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-sessions/{id} [put]
func (c *StudySessionController) UpdateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session := &model.StudySession{
		UserID:    claims.UserID,
		Duration:  req.Duration,
		Subject:   req.Subject,
		Date:      req.Date,
		Completed: req.Completed,
	}
	session.ID = ctx.Param("id")

	if err := c.SessionService.UpdateSession(claims.UserID, session); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, nil)
}

// DeleteSession godoc
// @Summary Delete a study session
// @Tags sessions
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-sessions/{id} [delete]
func (c *StudySessionController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SessionService.DeleteSession(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, nil)
}
