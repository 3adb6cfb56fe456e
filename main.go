// @title Modeva Storefront API
// @version 1.0
// @description Modeva storefront catalog: product listing, category tree, facets and sorting
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	store_category "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/category_controller"
	store_filter "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/filter_controller"
	store_product "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	_ "github.com/Modeva-Ecommerce/modeva-storefront/docs"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := config.InitLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Connect to DB
	if err := config.InitDB(); err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer config.CloseDB()

	opts := []services.CatalogOption{
		services.WithCategoryMode(catalog.ParseCategoryMode(cfg.CategoryMode)),
		services.WithRecentWindow(cfg.RecentWindow),
		services.WithLogger(logger.Named("catalog")),
	}

	// Redis backs the shared catalog cache and the rate limiter; without it
	// each instance caches locally and requests are not limited.
	var limiterStore redis.Cmdable
	if err := config.ConnectRedis(); err != nil {
		logger.Warn("redis unavailable, running without shared cache", zap.Error(err))
	} else {
		defer config.CloseRedis()
		opts = append(opts, services.WithSharedCache(category_cache.NewRedisSnapshotStore(config.RedisClient, cfg.CacheTTL)))
		limiterStore = config.RedisClient
	}

	source := services.NewPostgresCatalogSource(config.StoreDB, config.StoreGorm)
	catalogService := services.NewCatalogService(source, category_cache.NewMemory(cfg.CacheTTL), opts...)

	store_product.Init(catalogService, cfg.DefaultLimit, cfg.MaxLimit)
	store_category.Init(catalogService)
	store_filter.Init(catalogService)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Requested-With"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{"categoryMode": catalogService.Mode().String()}))
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(limiterStore, cfg.RateLimit, cfg.RateWindow))
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("categoryMode", catalogService.Mode().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}
