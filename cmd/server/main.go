package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gestao-associado-svc/docs"
	"gestao-associado-svc/internal/config"
	"gestao-associado-svc/internal/database"
	"gestao-associado-svc/internal/handler"
	"gestao-associado-svc/internal/middleware"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/internal/scheduler"
	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/money"
)

// @title Gestao Associado Service API
// @version 1.0
// @description RESTful API for membership, dues and payment management
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Gestao Associado Service API"
	docs.SwaggerInfo.Description = "RESTful API for membership, dues and payment management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Gestao Associado Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	credentialRepo := repository.NewCredentialRepository(db.DB)
	memberRepo := repository.NewMemberRepository(db.DB)
	dueRepo := repository.NewDueRepository(db.DB)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, db.DB, appLogger)
	authService := service.NewAuthService(credentialRepo, memberRepo, memberService, cfg.JWT, appLogger)
	ledgerService := service.NewLedgerService(dueRepo, memberRepo, db.DB, appLogger)
	reportService := service.NewReportService(dueRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, authService, memberService, ledgerService, reportService, cfg.JWT.Secret, appLogger)

	// Start the dues scheduler when enabled
	var duesScheduler *scheduler.DuesScheduler
	if cfg.Scheduler.Enabled {
		defaultAmount, err := money.FromString(cfg.Scheduler.DefaultDueAmount)
		if err != nil {
			appLogger.WithField("error", err).Fatal("Invalid default due amount")
		}
		duesScheduler = scheduler.NewDuesScheduler(ledgerService, memberService, appLogger, cfg.Scheduler.CronExpression, defaultAmount, cfg.Scheduler.DueDayOfMonth)
		if err := duesScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start dues scheduler")
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if duesScheduler != nil {
		duesScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
