// internal/router/router.go
package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/storefront/internal/config"
	"github.com/javajoker/storefront/internal/handlers"
	"github.com/javajoker/storefront/internal/middleware"
	"github.com/javajoker/storefront/internal/services"
)

// Services are the long-lived components the routes are bound to.
type Services struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Sessions *services.SessionService
}

// Initialize builds the engine. limiter may be nil to disable rate limiting.
func Initialize(svc Services, cfg *config.Config, limiter *middleware.RateLimiter, logger logrus.FieldLogger) *gin.Engine {
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	cartHandler := handlers.NewCartHandler(svc.Cart)
	sessionHandler := handlers.NewSessionHandler(svc.Sessions, svc.Cart)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.Frontend)))
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"products": svc.Catalog.ProductCount(),
		})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/sessions", sessionHandler.CreateSession)

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}
		v1.GET("/brands", catalogHandler.GetBrands)
		v1.GET("/categories", catalogHandler.GetCategories)
		v1.GET("/filters", catalogHandler.GetFilterMetadata)

		// Session-scoped routes
		scoped := v1.Group("")
		scoped.Use(middleware.SessionRequired(svc.Sessions))
		{
			scoped.GET("/header", cartHandler.GetHeader)

			cart := scoped.Group("/cart")
			{
				cart.GET("", cartHandler.GetCart)
				cart.DELETE("", cartHandler.ClearCart)
				cart.POST("/items", cartHandler.AddItem)
				cart.PUT("/items/:productId", cartHandler.UpdateItem)
				cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			}

			auth := scoped.Group("/auth")
			{
				auth.POST("/login", sessionHandler.Login)
				auth.POST("/logout", sessionHandler.Logout)
				auth.GET("/me", sessionHandler.GetProfile)
			}
		}
	}

	return r
}

// NewRateLimiter builds the per-IP limiter from config.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

func corsConfig(cfg config.FrontendConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Total-Count", "X-Page", "X-Per-Page", "X-Total-Pages"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}
