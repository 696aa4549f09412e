package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nsu-ctrg/grant-review/internal/api/middleware"
	"github.com/nsu-ctrg/grant-review/internal/api/routes"
	"github.com/nsu-ctrg/grant-review/internal/config"
	"github.com/nsu-ctrg/grant-review/internal/config/db"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	// Initialize MinIO client and ensure the proposal bucket exists
	storage.InitMinio()

	repos := repository.NewRepositories(db.DB)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, repos)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
