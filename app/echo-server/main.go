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

	"smartMenu/app/echo-server/router"
	"smartMenu/business/bandit"
	"smartMenu/business/tenant"
	"smartMenu/internal/middleware"
	psqlRepo "smartMenu/internal/repository/postgres"
	redisRepo "smartMenu/internal/repository/redis"
	"smartMenu/internal/rest"
	"smartMenu/pkg/config"
	"smartMenu/pkg/database"
	redisdb "smartMenu/pkg/database/redis"
	"smartMenu/pkg/logger"
	"smartMenu/pkg/metrics"
	"smartMenu/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SmartMenu recommender", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	// Init repos
	tenantRepo := psqlRepo.NewTenantRepository(db)
	armRepo := psqlRepo.NewArmRepository(db)
	statsRepo := psqlRepo.NewStatsRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)

	// Optional Redis arm cache; the registry is read on every
	// recommendation, so caching it pays off quickly.
	var (
		banditArmRepo bandit.ArmRepository = armRepo
		armCache      tenant.ArmCacheInvalidator
	)
	if cfg.Redis.Host != "" {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.CloseRedisClient(redisClient)

		cache := redisRepo.NewArmCache(
			redisClient,
			armRepo,
			time.Duration(cfg.Redis.ArmCacheTTL)*time.Second,
		)
		banditArmRepo = cache
		armCache = cache
		logger.Info("Arm cache enabled", "ttl_seconds", cfg.Redis.ArmCacheTTL)
	}

	// Init services
	sampler := bandit.NewSampler(cfg.Bandit.Seed)
	selector := bandit.NewSelector(sampler)
	banditService := bandit.NewService(banditArmRepo, statsRepo, eventRepo, selector, cfg.Bandit.DefaultK)
	tenantService := tenant.NewTenantService(tenantRepo, armRepo, armCache)

	// Init handlers
	banditHandler := rest.NewBanditHandler(banditService)
	tenantHandler := rest.NewTenantHandler(tenantService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Trace())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, banditHandler)
	router.SetTenantRoutes(api, tenantHandler)
	router.SetMetricsRoute(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
