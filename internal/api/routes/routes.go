package routes

import (
	"fmt"
	"net/http"

	"brain-backend/internal/api/handlers"
	"brain-backend/internal/api/middleware"
	"brain-backend/internal/auth"
	"brain-backend/internal/cache"
	"brain-backend/internal/config"
	"brain-backend/internal/repository"
	"brain-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the storage backends the router is built over.
// DB and Redis are only used for health reporting and may be nil.
type Dependencies struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Users      repository.UserRepositoryInterface
	Contents   repository.ContentRepositoryInterface
	ShareLinks repository.ShareLinkRepositoryInterface
	ShareCache cache.ShareCache
}

// PostgresDependencies wires the GORM repositories over db
func PostgresDependencies(db *gorm.DB) *Dependencies {
	return &Dependencies{
		DB:         db,
		Users:      repository.NewUserRepository(db),
		Contents:   repository.NewContentRepository(db),
		ShareLinks: repository.NewShareLinkRepository(db),
	}
}

// MemoryDependencies wires the in-process repositories over store
func MemoryDependencies(store *repository.MemoryStore) *Dependencies {
	return &Dependencies{
		Users:      store.Users(),
		Contents:   store.Contents(),
		ShareLinks: store.ShareLinks(),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		middleware.SetupPrometheus(router)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), deps.Users, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	contentService := service.NewContentService(deps.Contents, validator)
	shareService := service.NewShareService(deps.ShareLinks, deps.Users, deps.Contents, deps.ShareCache, cfg.ShareTokenLength)

	// Initialize handlers
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	contentHandler := handlers.NewContentHandler(contentService)
	shareHandler := handlers.NewShareHandler(shareService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/signup", authHandler.Signup)
		v1.POST("/signin", authHandler.Signin)
		v1.GET("/brain/:shareLink", shareHandler.GetSharedBrain)

		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.POST("/auth/validate", authHandler.ValidateToken)

			content := protected.Group("/content")
			{
				content.POST("", contentHandler.CreateContent)
				content.GET("", contentHandler.ListContent)
				content.GET("/tags", contentHandler.ListTags)
				content.PUT("", contentHandler.UpdateContent)
				content.DELETE("", contentHandler.DeleteContent)
			}

			// share tokens are at least 10 characters so they never collide with "share"
			protected.POST("/brain/share", shareHandler.SetSharing)
			protected.GET("/brain/share", shareHandler.GetSharingStatus)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
