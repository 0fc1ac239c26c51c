package controller

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/service"
	"study_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	MetricsService    *service.MetricsService
}

func NewAssignmentController(assignmentService *service.AssignmentService, metricsService *service.MetricsService) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
		MetricsService:    metricsService,
	}
}

// swagger:model AssignmentRequest
type AssignmentRequest struct {
	CourseID    string     `json:"courseId" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo doing done"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=high medium low"`
}

// swagger:model SubmissionRequest
type SubmissionRequest struct {
	Status         string   `json:"status" binding:"required,oneof=not_started in_progress submitted graded"`
	EstimatedHours *float64 `json:"estimatedHours" binding:"omitempty,gt=0"`
	ActualHours    *float64 `json:"actualHours" binding:"omitempty,gte=0"`
}

// ListAssignments godoc
// @Summary Assignments across the caller's enrolled courses
// @Tags assignments
// @Produce  json
// @Security BearerAuth
// @Param   courseId query string false "restrict to one course"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var assignments []model.Assignment
	var err error
	if courseID := ctx.Query("courseId"); courseID != "" {
		assignments, err = c.AssignmentService.ListByCourse(courseID)
	} else {
		assignments, err = c.AssignmentService.ListForUser(claims.UserID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// ListByCourse godoc
// @Summary Assignments of one course
// @Tags assignments
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "course id"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/courses/{id}/assignments [get]
func (c *AssignmentController) ListByCourse(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ListByCourse(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetAssignment godoc
// @Summary Assignment details
// @Tags assignments
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "assignment id"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	assignment, err := c.AssignmentService.GetAssignment(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, assignment)
}

// UpsertSubmission godoc
// @Summary Record the caller's state for an assignment
// @Description One submission row per student per assignment; repeated calls overwrite
// @Tags assignments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path string true "assignment id"
// @Param   body body SubmissionRequest true "submission payload"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/submission [put]
func (c *AssignmentController) UpsertSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub := &model.AssignmentSubmission{
		AssignmentID:   ctx.Param("id"),
		Status:         model.SubmissionStatus(req.Status),
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
	}

	if err := c.AssignmentService.UpsertSubmission(claims.UserID, sub); err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.MetricsService.InvalidateDashboard(ctx.Request.Context(), claims.UserID)
	util.Success(ctx, sub)
}

// GetSubmission godoc
// @Summary The caller's submission for an assignment
// @Tags assignments
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "assignment id"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id}/submission [get]
func (c *AssignmentController) GetSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.AssignmentService.GetSubmission(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AssignmentRequest true "assignment payload"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "unknown course"
// @Router /api/admin/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment := assignmentFromRequest(&req)
	if err := c.AssignmentService.CreateAssignment(assignment); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, assignment)
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path string true "assignment id"
// @Param   body body AssignmentRequest true "assignment payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment := assignmentFromRequest(&req)
	assignment.ID = ctx.Param("id")

	if err := c.AssignmentService.UpdateAssignment(assignment); err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags admin
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "assignment id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	if err := c.AssignmentService.DeleteAssignment(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// UploadAttachment godoc
// @Summary Attach a file to an assignment
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id   path string true "assignment id"
// @Param   file formData file true "attachment"
// @Success 200 {object} util.Response{data=object} "attachment URL"
// @Failure 404 {object} util.Response
// @Router /api/admin/assignments/{id}/attachment [post]
func (c *AssignmentController) UploadAttachment(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.AssignmentService.UploadAttachment(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

func assignmentFromRequest(req *AssignmentRequest) *model.Assignment {
	status := model.AssignmentStatus(req.Status)
	if status == "" {
		status = model.AssignmentTodo
	}
	priority := model.AssignmentPriority(req.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}

	return &model.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
		Priority:    priority,
	}
}
