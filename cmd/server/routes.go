package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"homeconnect.backend/internal/infrastructure/models"
	"homeconnect.backend/internal/interfaces/http/handlers"
	"homeconnect.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	listingHandler *handlers.ListingHandler
	paymentHandler *handlers.PaymentHandler
	contactHandler *handlers.ContactHandler
	statsHandler   *handlers.StatsHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Listing routes (public read, protected write)
		listings := api.Group("/listings")
		{
			listings.GET("", d.listingHandler.List)
			listings.GET("/:id", d.listingHandler.Get)
			listings.POST("", d.authMiddleware, d.listingHandler.Create)
			listings.PUT("/:id", d.authMiddleware, d.listingHandler.Update)
			listings.DELETE("/:id", d.authMiddleware, d.listingHandler.Delete)
		}
		api.GET("/my-listings", d.authMiddleware, d.listingHandler.MyListings)

		// Payment unlock routes (protected)
		payments := api.Group("/payments")
		payments.Use(d.authMiddleware)
		{
			payments.POST("/initialize", middleware.IdempotencyMiddleware(), d.paymentHandler.Initialize)
			payments.GET("/verify/:reference", d.paymentHandler.Verify)
		}
		api.GET("/unlocks/:listingId", d.authMiddleware, d.paymentHandler.Unlocked)

		// Static routes
		api.POST("/contact", d.contactHandler.Submit)
		api.GET("/stats", d.statsHandler.GetStats)
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerIndexRoute serves a small API directory at the root
func registerIndexRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "HomeConnect API is running",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth": gin.H{
					"register": "POST /api/auth/register",
					"login":    "POST /api/auth/login",
					"me":       "GET /api/auth/me (requires token)",
				},
				"listings": gin.H{
					"list":       "GET /api/listings",
					"get":        "GET /api/listings/:id",
					"create":     "POST /api/listings (requires token)",
					"update":     "PUT /api/listings/:id (requires token)",
					"delete":     "DELETE /api/listings/:id (requires token)",
					"myListings": "GET /api/my-listings (requires token)",
				},
				"payments": gin.H{
					"initialize": "POST /api/payments/initialize (requires token)",
					"verify":     "GET /api/payments/verify/:reference (requires token)",
					"unlocked":   "GET /api/unlocks/:listingId (requires token)",
				},
				"contact": "POST /api/contact",
				"stats":   "GET /api/stats",
			},
		})
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Unlock{},
	)
}
