package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment: "development",
		JWT:         JWTConfig{SecretKey: defaultJWTSecret},
		Catalog:     CatalogConfig{Source: CatalogSourceEmbedded},
		Store:       StoreConfig{Name: "flipkart-store", Persistence: PersistenceMemory},
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("CATALOG_SOURCE", "FILE")
	t.Setenv("CATALOG_SEED_PATH", "/etc/storefront/catalog.json")
	t.Setenv("CATALOG_FILTERS_DURING_SEARCH", "TRUE")
	t.Setenv("CATALOG_CACHE_SIZE", "not-a-number")
	t.Setenv("STORE_PERSISTENCE", "redis")
	t.Setenv("STORE_NAME", "")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.FiltersDuringSearch)
	assert.Equal(t, 256, cfg.Catalog.CacheSize)
	assert.Equal(t, PersistenceRedis, cfg.Store.Persistence)
	assert.Equal(t, "flipkart-store", cfg.Store.Name)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.Frontend.AllowedOrigins)
	assert.False(t, cfg.NeedsDatabase())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"default secret in production", func(c *Config) { c.Environment = "production" }, "JWT secret"},
		{"custom secret in production", func(c *Config) {
			c.Environment = "production"
			c.JWT.SecretKey = "s3cret"
		}, ""},
		{"file source without path", func(c *Config) { c.Catalog.Source = CatalogSourceFile }, "CATALOG_SEED_PATH"},
		{"s3 source without bucket", func(c *Config) { c.Catalog.Source = CatalogSourceS3 }, "AWS_CATALOG_BUCKET"},
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }, "unknown catalog source"},
		{"unknown persistence", func(c *Config) { c.Store.Persistence = "etcd" }, "unknown store persistence"},
		{"empty store name", func(c *Config) { c.Store.Name = "" }, "STORE_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNeedsDatabase(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.NeedsDatabase())

	cfg.Store.Persistence = PersistencePostgres
	assert.True(t, cfg.NeedsDatabase())

	cfg = validConfig()
	cfg.Catalog.Source = CatalogSourcePostgres
	assert.True(t, cfg.NeedsDatabase())
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "app", Password: "pw", Database: "storefront", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=storefront sslmode=disable", db.DSN())
}
