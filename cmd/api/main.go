package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rating-platform-api/config"
	"rating-platform-api/middleware"
	"rating-platform-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// One database handle for the whole process, closed on shutdown.
	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, db)

	// Create upload directory if not exists and serve it
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create upload directory: %v", err)
	}
	router.Static("/uploads", uploadPath)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// Close the pool cleanly on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down")
		if err := config.CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
		os.Exit(0)
	}()

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
