package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/config"
	"github.com/yaritu/core/internal/database"
	"github.com/yaritu/core/internal/middleware"
	"github.com/yaritu/core/internal/modules/storage"
	"github.com/yaritu/core/internal/pkg/jwt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.Config
	router *gin.Engine
	db     *mongo.Database
	store  storage.ObjectStorage
	logger *zap.Logger
}

// New initializes the application: config → database → storage → routes.
func New(logger *zap.Logger, cfg *config.Config) (*App, error) {
	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// A missing provider disables uploads rather than failing startup;
	// the upload endpoint reports the configuration error per request.
	store, err := storage.New(cfg.Storage)
	if err != nil && !errors.Is(err, storage.ErrNotConfigured) {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if store == nil {
		logger.Warn("no storage provider configured, uploads disabled")
	} else {
		logger.Info("storage backend ready", zap.String("provider", store.Provider()))
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	limiter := middleware.NewInMemoryRateLimiter(120, time.Minute)
	router.Use(middleware.RateLimit(limiter))

	app := &App{cfg: cfg, router: router, db: db, store: store, logger: logger}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if err := database.Disconnect(a.db); err != nil {
		a.logger.Warn("mongo disconnect", zap.Error(err))
	}
}
