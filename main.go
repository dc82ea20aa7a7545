package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clipstream/api-go/config"
	"github.com/clipstream/api-go/routes"
	"github.com/clipstream/api-go/storage"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize object storage and make sure the bucket exists
	store := storage.New(config.GetStorageConfig())
	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	// Create a new Gin router
	r := gin.Default()
	r.Use(corsMiddleware())

	// Initialize routes
	routes.SetupRoutes(r, db, store)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
