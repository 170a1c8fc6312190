package main

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/handler"
	storefrontmw "github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/storefront/store"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting storefront service...", zap.String("environment", cfg.Server.Env))

	jwtutil.Initialize(&cfg.JWT)

	// Customer accounts and carts live in a key-value store: Redis when
	// configured, otherwise in-process memory.
	var kv store.Store
	if os.Getenv("STORE_BACKEND") == "redis" {
		redisStore, err := store.NewRedis(context.Background(), &cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		kv = redisStore
		log.Info("Using Redis store", zap.String("addr", cfg.Redis.Addr))
	} else {
		kv = store.NewMemory()
		log.Info("Using in-memory store")
	}

	h := handler.New(kv)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware)
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	e.GET("/health", h.HealthCheck)
	e.GET("/metrics", h.Metrics)

	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.GET("/categories", h.ListCategories)

	cart := e.Group("/cart")
	cart.Use(storefrontmw.AuthMiddleware)
	cart.GET("", h.GetCart)
	cart.DELETE("", h.ClearCart)
	cart.POST("/items", h.AddCartItem)
	cart.PUT("/items/:id", h.UpdateCartItem)
	cart.DELETE("/items/:id", h.RemoveCartItem)

	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
