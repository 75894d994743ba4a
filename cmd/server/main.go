package main

import (
	"fmt"
	"log"

	achievementHandlers "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/handlers"
	achievementModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	commonHandlers "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/handlers"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/health"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	contentHandlers "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/handlers"
	contentModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/models"
	progressionHandlers "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/handlers"
	progressionModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	userHandlers "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/handlers"
	userModels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/config"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (SQLite for development, PostgreSQL for production)
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(
		&userModels.User{},
		&contentModels.Module{},
		&contentModels.Lesson{},
		&contentModels.Slide{},
		&progressionModels.ProgressStats{},
		&progressionModels.ModuleProgress{},
		&progressionModels.LearningProfile{},
		&progressionModels.LessonEvent{},
		&achievementModels.UserAchievement{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin engine
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.MetricsMiddleware())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(database.GetDB(), "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)

	// Prometheus metrics
	router.GET("/metrics", middleware.MetricsHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		usersGroup := v1.Group("/users")
		{
			usersGroup.POST("", userHandlers.Signup)
			usersGroup.GET("/:id", userHandlers.GetUser)
		}

		v1.GET("/profile", middleware.AuthRequired(), userHandlers.GetProfile)
		v1.PUT("/profile", middleware.AuthRequired(), userHandlers.UpdateProfile)
		v1.GET("/profile/rank", middleware.AuthRequired(), userHandlers.GetRankProgress)

		contentGroup := v1.Group("/content")
		{
			contentGroup.GET("/modules", contentHandlers.GetModules)
			contentGroup.GET("/modules/:id/lessons", contentHandlers.GetModuleLessons)
			contentGroup.GET("/lessons/:id", contentHandlers.GetLesson)
		}

		progressGroup := v1.Group("/progress", middleware.AuthRequired())
		{
			progressGroup.POST("/lessons/complete", progressionHandlers.CompleteLesson)
			progressGroup.GET("/stats", progressionHandlers.GetProgressStats)
			progressGroup.GET("/modules", progressionHandlers.GetModuleProgress)
			progressGroup.GET("/activity", progressionHandlers.GetRecentActivity)
		}

		achievementsGroup := v1.Group("/achievements")
		{
			achievementsGroup.GET("", achievementHandlers.GetCatalog)
			achievementsGroup.GET("/user", middleware.AuthRequired(), achievementHandlers.GetUserAchievements)
			achievementsGroup.POST("/seed", middleware.AuthRequired(), achievementHandlers.SeedAchievements)
			achievementsGroup.POST("/:id/claim", middleware.AuthRequired(), achievementHandlers.ClaimReward)
		}

		v1.GET("/leaderboard", progressionHandlers.GetLeaderboard)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting PulsePoints server", zap.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
