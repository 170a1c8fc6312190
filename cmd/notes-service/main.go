package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/handler"
	notesmw "github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/database"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables.
	// Fails hard when JWT_SIGNING_KEY is absent.
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting notes service...", cfg.LogFields()...)

	if err := database.InitDB(cfg, &model.User{}, &model.Tenant{}, &model.Note{}); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	jwtutil.Initialize(&cfg.JWT)

	e := echo.New()
	e.HideBanner = true

	// Global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware)
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	auth := e.Group("/auth")
	auth.POST("/login", handler.Login)

	// Protected routes - bearer token required
	notes := e.Group("/notes")
	notes.Use(notesmw.AuthMiddleware)
	notes.GET("", handler.ListNotes)
	notes.POST("", handler.CreateNote)
	notes.GET("/:id", handler.GetNote)
	notes.PUT("/:id", handler.UpdateNote)
	notes.DELETE("/:id", handler.DeleteNote)

	tenants := e.Group("/tenants")
	tenants.Use(notesmw.AuthMiddleware)
	tenants.POST("/:slug/upgrade", handler.UpgradeTenant)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
