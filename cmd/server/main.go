package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimgiray/hrboard/internal/handlers"
	"github.com/alimgiray/hrboard/internal/middleware"
	"github.com/alimgiray/hrboard/internal/repositories"
	"github.com/alimgiray/hrboard/internal/services"
	"github.com/alimgiray/hrboard/internal/workers"
	"github.com/alimgiray/hrboard/pkg/config"
	"github.com/alimgiray/hrboard/pkg/database"
	"github.com/alimgiray/hrboard/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	snapshotRepo := repositories.NewSnapshotRepository(database.DB)

	directoryCache := services.NewDirectoryCache()
	remoteService := services.NewRemoteEmployeeService(config.AppConfig.Directory, directoryCache)

	employeeAllocator := services.NewCounterAllocator(1)
	employeeService := services.NewEmployeeService(remoteService, snapshotRepo, employeeAllocator, config.AppConfig.Directory.CacheTTL)

	notificationAllocator := services.NewCounterAllocator(1)
	notificationService := services.NewNotificationService(snapshotRepo, notificationAllocator)

	bookmarkService := services.NewBookmarkService(snapshotRepo)
	profileService := services.NewProfileService(snapshotRepo)
	authService := services.NewAuthService(snapshotRepo)
	analyticsService := services.NewAnalyticsService(config.AppConfig.Directory.Seed)
	insightService := services.NewInsightService()
	exportService := services.NewExportService()

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	router.Use(middleware.SessionMiddleware())

	// Setup routes
	setupRoutes(router, authService, profileService, employeeService, bookmarkService, notificationService, analyticsService, insightService, exportService)

	// Start the cache refresh worker
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	refreshWorker := workers.NewRefreshWorker("refresh-1", employeeService, config.AppConfig.Directory.CacheTTL)
	go func() {
		if err := refreshWorker.Start(workerCtx); err != nil && err != context.Canceled {
			logger.Errorf("Refresh worker stopped: %v", err)
		}
	}()
	defer refreshWorker.Stop()
	defer cancelWorker()

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, authService *services.AuthService, profileService *services.ProfileService, employeeService *services.EmployeeService, bookmarkService *services.BookmarkService, notificationService *services.NotificationService, analyticsService *services.AnalyticsService, insightService *services.InsightService, exportService *services.ExportService) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, profileService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, insightService, exportService, notificationService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, employeeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	analyticsHandler := handlers.NewAnalyticsHandler(employeeService, analyticsService, bookmarkService)
	healthHandler := handlers.NewHealthHandler()

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.GET("/employees", employeeHandler.List)
		api.POST("/employees", employeeHandler.Create)
		api.POST("/employees/refresh", employeeHandler.Refresh)
		api.GET("/employees/export", employeeHandler.Export)
		api.GET("/employees/:id", employeeHandler.Get)
		api.PATCH("/employees/:id", employeeHandler.Update)

		api.GET("/bookmarks", bookmarkHandler.List)
		api.POST("/bookmarks/:id", bookmarkHandler.Add)
		api.DELETE("/bookmarks/:id", bookmarkHandler.Remove)
		api.DELETE("/bookmarks", bookmarkHandler.Clear)

		api.GET("/notifications", notificationHandler.List)
		api.POST("/notifications", notificationHandler.Create)
		api.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		api.POST("/notifications/:id/read", notificationHandler.MarkRead)
		api.DELETE("/notifications/:id", notificationHandler.Remove)
		api.DELETE("/notifications", notificationHandler.Clear)

		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)
		api.PUT("/profile/avatar", profileHandler.UpdateAvatar)

		api.GET("/analytics/summary", analyticsHandler.Summary)
		api.GET("/analytics/departments", analyticsHandler.Departments)
		api.GET("/analytics/ratings", analyticsHandler.Ratings)
		api.GET("/analytics/top-performers", analyticsHandler.TopPerformers)
		api.GET("/analytics/bookmark-trends", analyticsHandler.BookmarkTrends)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
