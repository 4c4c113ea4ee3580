package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhanushraagav/ai-interview-platform/internal/config"
	"github.com/Dhanushraagav/ai-interview-platform/internal/controller"
	"github.com/Dhanushraagav/ai-interview-platform/internal/repository"
	"github.com/Dhanushraagav/ai-interview-platform/internal/service"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/database"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/logger"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/monitoring"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/security"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user     *repository.UserRepository
	sessions *repository.SessionStore
	bank     *repository.QuestionBank
}

type services struct {
	auth      *service.AuthService
	interview *service.InterviewService
}

type controllers struct {
	auth      *controller.AuthController
	interview *controller.InterviewController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) (*repositories, error) {
	bank, err := repository.LoadQuestionBank(a.Config.Interview.QuestionsFile)
	if err != nil {
		return nil, err
	}

	return &repositories{
		user:     repository.NewUserRepository(db),
		sessions: repository.NewSessionStore(),
		bank:     bank,
	}, nil
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		auth:      service.NewAuthService(repos.user, a.Config),
		interview: service.NewInterviewService(repos.sessions, repos.bank, a.Config),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		interview: controller.NewInterviewController(s.interview),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos, err := app.initRepositories(db)
	if err != nil {
		logger.Log.Fatal("Failed to load question bank", zap.Error(err))
	}
	logger.Log.Info("Question bank loaded",
		zap.String("file", cfg.Interview.QuestionsFile),
		zap.Int("topics", len(repos.bank.Topics())),
	)

	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("interview-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
