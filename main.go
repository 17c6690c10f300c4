package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magazine/database"
	"magazine/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("🚀 Starting Magazine Backend Server...")

	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	// ===== REQUIRED ENV VARIABLES =====
	jwt := os.Getenv("JWT_SECRET")
	mongo := os.Getenv("MONGODB_URI")

	if jwt == "" || mongo == "" {
		log.Fatal("❌ JWT_SECRET and MONGODB_URI must be set")
	}

	if os.Getenv("CLOUDINARY_URL") == "" {
		log.Println("⚠️  CLOUDINARY_URL not set - post image uploads will fail")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("🔌 Connecting to MongoDB...")

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(); err != nil {
			dbErr = err
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}

	if dbErr != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
	}

	log.Println("✅ MongoDB connected successfully")

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("⚙️ Running in DEBUG mode")
	}

	// ===== ROUTER =====
	router := routes.SetupRouter()

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "Magazine Backend Running 🚀",
			"service": "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🌐 Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	log.Println("✅ Server is ready and accepting connections")

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	if err := database.DisconnectMongo(); err != nil {
		log.Println("❌ MongoDB disconnect error:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
