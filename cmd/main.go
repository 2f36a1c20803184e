package main

import (
	"errors"

	"property-service/internal/events"
	"property-service/internal/handler"
	"property-service/internal/middleware"
	"property-service/internal/store"
	"property-service/internal/workflow"
	"property-service/pkg/config"
	"property-service/pkg/jwtutil"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting property service...", zap.String("environment", cfg.Server.Env))

	// Initialize session token signing
	jwtutil.Init(cfg)

	// Initialize the record store backend
	if err := store.Init(cfg, log); err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}

	// Boot check: a corrupt persisted record is recoverable, the store
	// falls back to the seeded default. Report it, don't crash.
	if _, err := store.Get().Load(); err != nil {
		if errors.Is(err, store.ErrCorruptState) {
			log.Warn("Persisted state was corrupt, starting from seeded default")
		} else {
			log.Fatal("Failed to load application state", zap.Error(err))
		}
	}
	log.Info("Record store ready", zap.String("backend", cfg.Store.Backend))

	// Optional notification event fan-out
	if cfg.Events.Enabled {
		publisher, err := events.NewNotificationPublisher(cfg, log)
		if err != nil {
			// Delivery fan-out is best effort; the in-app record still works.
			log.Warn("Notification event publisher unavailable", zap.Error(err))
		} else {
			defer publisher.Close()
			workflow.SetPublisher(publisher)
		}
	}

	// Initialize handlers with configuration
	handler.Init(cfg)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no session required
	e.GET("/", handler.Hello)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", prometheus.HandlerFunc())

	auth := e.Group("/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	// Session-scoped API
	api := e.Group("/api")
	api.Use(middleware.SessionMiddleware)

	api.GET("/profile", handler.GetProfile)
	api.PUT("/profile", handler.UpdateProfile)
	api.GET("/users", handler.ListUsers, middleware.RequireStaff)

	properties := api.Group("/properties")
	properties.GET("", handler.ListProperties)
	properties.GET("/:id", handler.GetProperty)
	properties.POST("", handler.CreateProperty, middleware.RequireStaff)
	properties.PUT("/:id", handler.UpdateProperty, middleware.RequireStaff)
	properties.PUT("/:id/status", handler.SetPropertyStatus, middleware.RequireStaff)
	properties.POST("/:id/assign", handler.AssignTenant, middleware.RequireStaff)

	applications := api.Group("/applications")
	applications.GET("", handler.ListApplications)
	applications.POST("", handler.SubmitApplication)
	applications.PUT("/:id", handler.EditApplication)
	applications.PUT("/:id/decision", handler.DecideApplication, middleware.RequireStaff)

	tickets := api.Group("/tickets")
	tickets.GET("", handler.ListTickets)
	tickets.POST("", handler.CreateTicket)
	tickets.PUT("/:id/status", handler.TransitionTicket, middleware.RequireStaff)

	payments := api.Group("/payments")
	payments.GET("", handler.ListPayments)
	payments.POST("", handler.SchedulePayment, middleware.RequireStaff)
	payments.POST("/:id/settle", handler.SettlePayment)

	agreements := api.Group("/agreements")
	agreements.GET("", handler.ListAgreements)
	agreements.POST("/:id/document", handler.AttachAgreementDocument)
	agreements.POST("/summarize", handler.SummarizeLease)

	notifications := api.Group("/notifications")
	notifications.GET("", handler.ListNotifications)
	notifications.PUT("/read-all", handler.MarkAllNotificationsRead)
	notifications.PUT("/:id/read", handler.MarkNotificationRead)
	notifications.DELETE("/:id", handler.DeleteNotification)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
