package app

import (
	"study_planner_backend/docs"
	"study_planner_backend/internal/config"
	"study_planner_backend/internal/middleware"
	"study_planner_backend/internal/model"
	"study_planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, store *config.Store) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerStudentRoutes(router, c, repos, store)
	a.registerAdminRoutes(router, c, repos, store)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers, repos *repositories, store *config.Store) {
	rg := router.Group("/api")
	rg.Use(middleware.AuthMiddleware(store), middleware.ActivityMiddleware(repos.user))
	{
		rg.GET("/profile", c.user.GetProfile)
		rg.PUT("/profile", c.user.UpdateProfile)

		rg.GET("/courses", c.course.ListCourses)
		rg.GET("/courses/enrolled", c.course.ListEnrolled)
		rg.GET("/courses/:id", c.course.GetCourse)
		rg.POST("/courses/:id/enroll", c.course.Enroll)
		rg.DELETE("/courses/:id/enroll", c.course.Unenroll)
		rg.GET("/courses/:id/assignments", c.assignment.ListByCourse)

		rg.GET("/study-sessions", c.session.ListSessions)
		rg.POST("/study-sessions", c.session.CreateSession)
		rg.GET("/study-sessions/:id", c.session.GetSession)
		rg.PUT("/study-sessions/:id", c.session.UpdateSession)
		rg.DELETE("/study-sessions/:id", c.session.DeleteSession)

		rg.GET("/study-goals", c.goal.ListGoals)
		rg.POST("/study-goals", c.goal.CreateGoal)
		rg.GET("/study-goals/:id", c.goal.GetGoal)
		rg.PUT("/study-goals/:id", c.goal.UpdateGoal)
		rg.DELETE("/study-goals/:id", c.goal.DeleteGoal)
		rg.GET("/study-goals/:id/progress", c.goal.GetGoalProgress)

		rg.GET("/assignments", c.assignment.ListAssignments)
		rg.GET("/assignments/:id", c.assignment.GetAssignment)
		rg.GET("/assignments/:id/submission", c.assignment.GetSubmission)
		rg.PUT("/assignments/:id/submission", c.assignment.UpsertSubmission)

		rg.GET("/metrics/study", c.metrics.GetStudyMetrics)
		rg.GET("/metrics/assignments", c.metrics.GetAssignmentMetrics)
		rg.GET("/dashboard", c.metrics.GetDashboard)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, store *config.Store) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(store), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.AdminGetUser)
		admin.PUT("/users/:id", c.user.AdminUpdateUser)
		admin.DELETE("/users/:id", c.user.AdminDeleteUser)

		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)

		admin.POST("/assignments", c.assignment.CreateAssignment)
		admin.PUT("/assignments/:id", c.assignment.UpdateAssignment)
		admin.DELETE("/assignments/:id", c.assignment.DeleteAssignment)
		admin.POST("/assignments/:id/attachment", c.assignment.UploadAttachment)
	}
}
