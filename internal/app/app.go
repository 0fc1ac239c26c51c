package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/controller"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/service"
	"study_planner_backend/pkg/database"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"
	"study_planner_backend/pkg/security"
	"study_planner_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Store  *config.Store
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	session    *repository.StudySessionRepository
	goal       *repository.StudyGoalRepository
	assignment *repository.AssignmentRepository
	submission *repository.SubmissionRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	course     *service.CourseService
	session    *service.StudySessionService
	goal       *service.StudyGoalService
	assignment *service.AssignmentService
	metrics    *service.MetricsService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	course     *controller.CourseController
	session    *controller.StudySessionController
	goal       *controller.StudyGoalController
	assignment *controller.AssignmentController
	metrics    *controller.MetricsController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		session:    repository.NewStudySessionRepository(db),
		goal:       repository.NewStudyGoalRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		submission: repository.NewSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, store *config.Store, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(store.Load())
	s.auth = service.NewAuthService(repos.user, store)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.session = service.NewStudySessionService(repos.session)
	s.goal = service.NewStudyGoalService(repos.goal)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.submission, repos.course, s.storage)
	s.metrics = service.NewMetricsService(repos.session, repos.goal, repos.assignment, repos.submission, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		course:     controller.NewCourseController(s.course),
		session:    controller.NewStudySessionController(s.session, s.metrics),
		goal:       controller.NewStudyGoalController(s.goal, s.metrics),
		assignment: controller.NewAssignmentController(s.assignment, s.metrics),
		metrics:    controller.NewMetricsController(s.metrics),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(store *config.Store) *App {
	cfg := store.Load()

	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	// Migrations run automatically outside release mode; in release they
	// require the -migrate flag.
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The dashboard cache degrades to direct computation without Redis.
		logger.Log.Warn("Failed to initialize redis, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Store: store,
		DB:    db,
		Redis: rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, store, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("study-planner", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, store)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	port := a.Store.Load().Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
