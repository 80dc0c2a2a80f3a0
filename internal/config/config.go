// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Catalog sources
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Persistence backends for cart/user state
const (
	PersistenceMemory   = "memory"
	PersistenceRedis    = "redis"
	PersistencePostgres = "postgres"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	AWS         AWSConfig
	Catalog     CatalogConfig
	Store       StoreConfig
	RateLimit   RateLimitConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	AllowedOrigins []string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey  string
	SessionTTL int // in hours
}

type RedisConfig struct {
	URL string
	TTL int // in hours, 0 keeps keys forever
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	CatalogBucket   string
	CatalogKey      string
}

type CatalogConfig struct {
	Source              string
	SeedPath            string
	FiltersDuringSearch bool
	CacheSize           int
}

type StoreConfig struct {
	Name        string
	Persistence string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "storefront"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET", defaultJWTSecret),
			SessionTTL: getEnvAsInt("JWT_SESSION_TTL", 24*30), // 30 days
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
			TTL: getEnvAsInt("REDIS_TTL", 24*30),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			CatalogBucket:   getEnv("AWS_CATALOG_BUCKET", ""),
			CatalogKey:      getEnv("AWS_CATALOG_KEY", "catalog.yaml"),
		},
		Catalog: CatalogConfig{
			Source:              strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceEmbedded)),
			SeedPath:            getEnv("CATALOG_SEED_PATH", ""),
			FiltersDuringSearch: getEnvAsBool("CATALOG_FILTERS_DURING_SEARCH", false),
			CacheSize:           getEnvAsInt("CATALOG_CACHE_SIZE", 256),
		},
		Store: StoreConfig{
			Name:        getEnv("STORE_NAME", "flipkart-store"),
			Persistence: strings.ToLower(getEnv("STORE_PERSISTENCE", PersistenceMemory)),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Frontend: FrontendConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == defaultJWTSecret && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	switch c.Catalog.Source {
	case CatalogSourceEmbedded, CatalogSourcePostgres:
	case CatalogSourceFile:
		if c.Catalog.SeedPath == "" {
			return fmt.Errorf("CATALOG_SEED_PATH is required for the file catalog source")
		}
	case CatalogSourceS3:
		if c.AWS.CatalogBucket == "" {
			return fmt.Errorf("AWS_CATALOG_BUCKET is required for the s3 catalog source")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	switch c.Store.Persistence {
	case PersistenceMemory, PersistenceRedis, PersistencePostgres:
	default:
		return fmt.Errorf("unknown store persistence %q", c.Store.Persistence)
	}

	if c.Store.Name == "" {
		return fmt.Errorf("STORE_NAME must not be empty")
	}

	return nil
}

// NeedsDatabase reports whether any component is backed by postgres.
func (c *Config) NeedsDatabase() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.Store.Persistence == PersistencePostgres
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
