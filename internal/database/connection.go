// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/storefront/internal/catalog"
	"github.com/javajoker/storefront/internal/config"
	"github.com/javajoker/storefront/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logMode := logger.Silent
	switch cfg.LogLevel {
	case "info":
		logMode = logger.Info
	case "warn":
		logMode = logger.Warn
	case "error":
		logMode = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.StoreSnapshot{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_brand ON products(category, brand)",
		"CREATE INDEX IF NOT EXISTS idx_store_snapshots_updated ON store_snapshots(updated_at DESC)",
	}
	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// SeedCatalog writes the seed when the products table is empty. An existing
// catalog is left untouched.
func SeedCatalog(ctx context.Context, db *gorm.DB, seed *catalog.Seed) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		logrus.WithField("products", count).Info("Catalog already seeded")
		return nil
	}

	err := WithTransaction(db.WithContext(ctx), func(tx *gorm.DB) error {
		if len(seed.Categories) > 0 {
			if err := tx.CreateInBatches(seed.Categories, 100).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
		}
		if len(seed.Products) > 0 {
			if err := tx.CreateInBatches(seed.Products, 100).Error; err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"products":   len(seed.Products),
		"categories": len(seed.Categories),
	}).Info("Catalog seeded")
	return nil
}

// LoadCatalog reads the catalog back in seed order.
func LoadCatalog(ctx context.Context, db *gorm.DB) (*catalog.Seed, error) {
	seed := &catalog.Seed{}
	if err := db.WithContext(ctx).Order("position ASC").Find(&seed.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if err := db.WithContext(ctx).Order("position ASC").Find(&seed.Categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return seed, nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
