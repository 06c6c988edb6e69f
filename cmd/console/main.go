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

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zemuria/ops-console/internal/application/command"
	appMiddleware "github.com/zemuria/ops-console/internal/application/middleware"
	"github.com/zemuria/ops-console/internal/application/query"
	"github.com/zemuria/ops-console/internal/domain/service"
	"github.com/zemuria/ops-console/internal/infrastructure/cache"
	"github.com/zemuria/ops-console/internal/infrastructure/config"
	"github.com/zemuria/ops-console/internal/infrastructure/external/engine"
	"github.com/zemuria/ops-console/internal/infrastructure/logging"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
	"github.com/zemuria/ops-console/internal/interfaces/http/handlers"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logging.Init(&cfg.Sentry); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	logging.Logger.Info("Starting ops console",
		zap.Int("port", cfg.Server.Port),
		zap.String("engine", cfg.Engine.BaseURL),
		zap.String("environment", cfg.Sentry.Environment),
	)

	// Open the persisted staff session
	sessions, err := session.Open(cfg.Session.TokenFile)
	if err != nil {
		logging.Logger.Fatal("Failed to open session store", zap.Error(err))
	}
	redirector := session.NewRedirector()

	// Analytics backend client
	client := engine.NewClient(engine.Config{
		BaseURL: cfg.Engine.BaseURL,
		Timeout: cfg.Engine.Timeout,
	}, sessions, redirector, logging.WithComponent("engine"))

	// Caches and domain services
	listings := cache.NewListingCache(logging.WithComponent("cache"))
	reconciler := service.NewRevenueReconciler()
	segmentation := service.NewSegmentationService()

	// Commands
	loginCmd := command.NewLoginCommand(client, logging.WithComponent("auth"))
	grantCmd := command.NewGrantAccessCommand(client, listings, logging.WithComponent("override"))

	// Queries
	overviewQuery := query.NewGetOverviewQuery(client, reconciler)
	financialsQuery := query.NewGetFinancialsQuery(client, reconciler)
	userAnalyticsQuery := query.NewGetUserAnalyticsQuery(client, segmentation)
	systemInfraQuery := query.NewGetSystemInfraQuery(client)
	operationsQuery := query.NewGetOperationsQuery(client, listings)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginCmd, sessions)
	dashboardHandler := handlers.NewDashboardHandler(
		overviewQuery,
		financialsQuery,
		userAnalyticsQuery,
		systemInfraQuery,
	)
	adminHandler := handlers.NewAdminHandler(operationsQuery, grantCmd)

	guard := appMiddleware.NewSessionGuard(sessions, redirector)

	// Setup Gin router
	if cfg.Sentry.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		logging.RequestMiddleware(logging.Logger),
	)
	if cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{
			Repanic:         true,
			WaitForDelivery: false,
			Timeout:         2 * time.Second,
		}))
	}

	// Health check endpoint (no auth required)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		// Console routes (require the staff session)
		protected := v1.Group("")
		protected.Use(guard.Require())
		{
			dashboard := protected.Group("/dashboard")
			dashboard.GET("/overview", dashboardHandler.Overview)
			dashboard.GET("/financials", dashboardHandler.Financials)
			dashboard.GET("/users", dashboardHandler.UserAnalytics)
			dashboard.GET("/system", dashboardHandler.SystemInfra)

			admin := protected.Group("/admin")
			admin.GET("/operations", adminHandler.Operations)
			admin.GET("/draft", adminHandler.Draft)
			admin.GET("/override/state", adminHandler.SubmissionState)
			admin.POST("/override", adminHandler.Override)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Graceful shutdown
	go func() {
		logging.Logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("Server exited")
}
