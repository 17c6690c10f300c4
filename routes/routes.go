package routes

import (
	"magazine/handlers"
	"magazine/middleware"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Add health check endpoint for testing
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Magazine API is running",
			"time":    time.Now().Unix(),
			"google":  "Google OAuth available",
		})
	})

	// CORS configuration for local development origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Google OAuth routes (public, rate limited)
	auth := router.Group("/api")
	auth.Use(middleware.RateLimitMiddleware())
	auth.GET("/google/auth-url", handlers.GetGoogleAuthURL)
	auth.GET("/google/callback", handlers.GoogleOAuthCallback)
	auth.POST("/google-auth", handlers.GoogleAuthWithCredential)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Profile
	protected.GET("/me", handlers.GetMyProfile)

	// Feed
	protected.GET("/posts", handlers.GetFeed)
	protected.GET("/categories", handlers.GetCategories)

	// Post detail
	protected.GET("/posts/:id", handlers.GetPost)
	protected.POST("/posts/:id/click", handlers.ClickImageLink)

	// Authoring (admin only)
	admin := protected.Group("")
	admin.Use(middleware.AdminRequired())
	admin.POST("/posts", handlers.CreatePost)

	// Add a catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		// If it's an API route, return JSON 404
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
				"message": "Check the API documentation for available endpoints",
			})
			return
		}
		// For non-API routes, let Gin handle it
		c.Next()
	})

	return router
}
