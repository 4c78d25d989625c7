package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rehab-match/config"
	deliveryHttp "rehab-match/internal/delivery/http"
	"rehab-match/internal/delivery/http/handler"
	"rehab-match/internal/delivery/http/middleware"
	"rehab-match/internal/infrastructure/cache"
	"rehab-match/internal/infrastructure/database"
	"rehab-match/internal/optimizer"
	"rehab-match/internal/repository"
	"rehab-match/internal/service"
	"rehab-match/internal/usecase"
	"rehab-match/pkg/jwt"
	"rehab-match/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize matching engine and solver
	engine, err := optimizer.NewEngine(optimizer.Options{
		Weights:         weights(cfg.Optimizer.Weights),
		CriticalWeights: weights(cfg.Optimizer.CriticalWeights),
		DefaultDistKM:   cfg.Optimizer.DefaultDistKM,
		CriticalScore:   cfg.Optimizer.CriticalScore,
		ConcerningScore: cfg.Optimizer.ConcerningScore,
		RadiusExpansion: cfg.Optimizer.RadiusExpansion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize matching engine: %w", err)
	}

	// Initialize logger
	log := logrus.StandardLogger()

	solver := optimizer.NewSolver(optimizer.NewLPBackend(), log)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	clinicianRepo := repository.NewClinicianRepository()
	timeslotRepo := repository.NewTimeslotRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	snapshotCache := service.NewSnapshotCacheService(db, redisClient, log, clinicianRepo, timeslotRepo, cfg.Optimizer.SnapshotTTL)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	clinicianUsecase := usecase.NewClinicianUsecase(db, log, clinicianRepo, auditService, snapshotCache)
	timeslotUsecase := usecase.NewTimeslotUsecase(db, log, timeslotRepo, auditService, snapshotCache)
	recommendationUsecase := usecase.NewRecommendationUsecase(db, log, engine, patientRepo, snapshotCache, auditService, cfg.Optimizer.TopK, cfg.Optimizer.RecommendWorkers)
	optimizationUsecase := usecase.NewOptimizationUsecase(db, log, engine, solver, patientRepo, snapshotCache, auditService, cfg.Optimizer.SolverTimeout)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	clinicianHandler := handler.NewClinicianHandler(clinicianUsecase, customValidator)
	timeslotHandler := handler.NewTimeslotHandler(timeslotUsecase, customValidator)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUsecase)
	optimizationHandler := handler.NewOptimizationHandler(optimizationUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		clinicianHandler,
		timeslotHandler,
		recommendationHandler,
		optimizationHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

func weights(w config.WeightConfig) optimizer.Weights {
	return optimizer.Weights{
		Urgency:        w.Urgency,
		Proximity:      w.Proximity,
		Continuity:     w.Continuity,
		TimePreference: w.TimePreference,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
