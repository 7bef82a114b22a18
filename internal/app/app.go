package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/merchhub/server/internal/module/catalog"
	"github.com/merchhub/server/internal/module/issue"
	"github.com/merchhub/server/internal/module/order"
	sharedcache "github.com/merchhub/server/internal/shared/cache"
	"github.com/merchhub/server/internal/shared/config"
	"github.com/merchhub/server/internal/shared/database"
	"github.com/merchhub/server/internal/shared/logger"
	"github.com/merchhub/server/internal/shared/metrics"
	"github.com/merchhub/server/internal/shared/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App represents the application.
type App struct {
	config  *config.Config
	db      *gorm.DB
	redis   goredis.UniversalClient
	router  *gin.Engine
	logger  *zap.Logger
	metrics *metrics.Metrics

	// Modules
	catalogHandler *catalog.Handler
	orderHandler   *order.Handler
	issueHandler   *issue.Handler
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	app := &App{
		config:  cfg,
		logger:  log,
		metrics: metrics.New("merchhub"),
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	app.db = db

	if err := app.migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	// Redis is optional; without it order placement just loses
	// idempotent retry caching.
	if cfg.Redis.Address != "" {
		redisClient, err := sharedcache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("redis connection failed, idempotency caching disabled", zap.Error(err))
		} else {
			app.redis = redisClient
		}
	}

	app.initModules()
	app.router = app.setupRouter()
	app.registerRoutes()

	return app, nil
}

// migrate creates or updates the database schema.
func (a *App) migrate() error {
	return a.db.AutoMigrate(
		&catalog.Product{},
		&order.Order{},
		&order.Sequence{},
		&issue.Issue{},
	)
}

// initModules wires repositories, services and handlers.
func (a *App) initModules() {
	catalogRepo := catalog.NewRepository(a.db)
	catalogService := catalog.NewService(catalogRepo, a.logger)
	a.catalogHandler = catalog.NewHandler(catalogService)

	orderRepo := order.NewRepository(a.db)
	orderService := order.NewService(orderRepo, catalogRepo, a.metrics, a.logger)
	a.orderHandler = order.NewHandler(orderService)

	issueRepo := issue.NewRepository(a.db)
	issueService := issue.NewService(issueRepo, orderRepo, a.metrics, a.logger)
	a.issueHandler = issue.NewHandler(issueService)
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	if a.config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics(a.metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// registerRoutes registers routes for all modules.
func (a *App) registerRoutes() {
	v1 := a.router.Group("/api/v1")

	idempotency := a.idempotencyMiddleware()

	a.catalogHandler.RegisterRoutes(v1)
	a.orderHandler.RegisterRoutes(v1, idempotency)
	a.issueHandler.RegisterRoutes(v1)
}

// idempotencyMiddleware returns the idempotency middleware, or a no-op
// when Redis is unavailable.
func (a *App) idempotencyMiddleware() gin.HandlerFunc {
	if a.redis == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.Idempotency(a.redis, middleware.DefaultIdempotencyConfig())
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Stop stops the application and releases resources.
func (a *App) Stop() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.redis != nil {
		_ = sharedcache.Close(a.redis)
	}
	if a.db != nil {
		_ = database.Close(a.db)
	}
}
