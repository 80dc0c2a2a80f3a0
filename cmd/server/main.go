// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/storefront/internal/cart"
	"github.com/javajoker/storefront/internal/catalog"
	"github.com/javajoker/storefront/internal/config"
	"github.com/javajoker/storefront/internal/database"
	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/router"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

const (
	storeIdleTimeout   = 30 * time.Minute
	storeSweepInterval = 5 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := newLogger(cfg)

	if err := i18n.Initialize(); err != nil {
		log.Fatal("Failed to initialize messages:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *gorm.DB
	if cfg.NeedsDatabase() {
		db, err = database.Initialize(cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
	}

	seed, err := loadCatalog(ctx, cfg, db)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	logger.WithFields(logrus.Fields{
		"source":     cfg.Catalog.Source,
		"products":   len(seed.Products),
		"categories": len(seed.Categories),
	}).Info("Catalog loaded")

	persister, closePersister, err := newPersister(ctx, cfg, db)
	if err != nil {
		log.Fatal("Failed to initialize store persistence:", err)
	}
	defer closePersister()

	registry := cart.NewRegistry(cfg.Store.Name, persister, logger.WithField("component", "cart"))
	go registry.RunJanitor(ctx, storeSweepInterval, storeIdleTimeout)

	catalogService := services.NewCatalogService(seed,
		catalog.WithFiltersDuringSearch(cfg.Catalog.FiltersDuringSearch),
		catalog.WithCacheSize(cfg.Catalog.CacheSize),
	)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	limiter := router.NewRateLimiter(cfg.RateLimit)
	if limiter != nil {
		go limiter.RunCleanup(ctx)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(router.Services{
		Catalog:  catalogService,
		Cart:     services.NewCartService(registry, catalogService),
		Sessions: services.NewSessionService(time.Duration(cfg.JWT.SessionTTL) * time.Hour),
	}, cfg, limiter, logger.WithField("component", "http"))

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func loadCatalog(ctx context.Context, cfg *config.Config, db *gorm.DB) (*catalog.Seed, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.LoadSeedFile(cfg.Catalog.SeedPath)
	case config.CatalogSourceS3:
		source, err := catalog.NewS3Source(cfg.AWS)
		if err != nil {
			return nil, err
		}
		return source.Load(ctx)
	case config.CatalogSourcePostgres:
		seed, err := initialSeed(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.SeedCatalog(ctx, db, seed); err != nil {
			return nil, err
		}
		return database.LoadCatalog(ctx, db)
	default:
		return catalog.DefaultSeed()
	}
}

// initialSeed is what an empty postgres catalog is populated from.
func initialSeed(cfg *config.Config) (*catalog.Seed, error) {
	if cfg.Catalog.SeedPath != "" {
		return catalog.LoadSeedFile(cfg.Catalog.SeedPath)
	}
	return catalog.DefaultSeed()
}

func newPersister(ctx context.Context, cfg *config.Config, db *gorm.DB) (cart.Persister, func(), error) {
	switch cfg.Store.Persistence {
	case config.PersistenceRedis:
		persister, client, err := cart.NewRedisPersister(ctx, cfg.Redis.URL, time.Duration(cfg.Redis.TTL)*time.Hour)
		if err != nil {
			return nil, nil, err
		}
		return persister, func() { client.Close() }, nil
	case config.PersistencePostgres:
		return cart.NewGormPersister(db), func() {}, nil
	default:
		return cart.NewMemoryPersister(), func() {}, nil
	}
}
