package main

import (
	"context"
	"log"

	"brain-backend/internal/api/routes"
	"brain-backend/internal/cache"
	"brain-backend/internal/config"
	"brain-backend/internal/database"
	"brain-backend/internal/logger"
	"brain-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "brain-backend/docs" // This is needed for swag
)

//	@title			Second Brain API
//	@version		1.0
//	@description	Store links, tweets, videos and notes, and share them through a public link.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	deps := setupStorage(cfg)

	// Optional redis share cache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, share links will be resolved from the store")
		} else {
			defer client.Close()
			deps.Redis = client
			deps.ShareCache = cache.NewRedisShareCache(client, cfg.ShareCacheTTL)
			logrus.Infof("Share cache enabled on %s", cfg.RedisAddr)
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(cfg, deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupStorage(cfg *config.Config) *routes.Dependencies {
	if cfg.UsesMemoryStorage() {
		logrus.Warn("Using in-memory storage; data is lost on restart")
		return routes.MemoryDependencies(repository.NewMemoryStore())
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	return routes.PostgresDependencies(db)
}
