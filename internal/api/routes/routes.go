package routes

import (
	"net/http"

	"garden-planner-backend/internal/api/handlers"
	"garden-planner-backend/internal/api/middleware"
	"garden-planner-backend/internal/auth"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. db is nil when
// the companion dataset is read from a file.
func SetupRoutes(cfg *config.Config, store service.KnowledgeStore, db *gorm.DB) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize services
	planningService := service.NewPlanningService(store, validator.New(), cfg.MaxSelectedPlants, cfg.MaxAreaM2)
	companionService := service.NewCompanionService(store)

	// Admin endpoints are only exposed with a usable signing secret
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		logger.New().WithError(err).Warn("Auth disabled, admin routes are not registered")
	} else {
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, companionService)
	planningHandler := handlers.NewPlanningHandler(planningService)
	companionHandler := handlers.NewCompanionHandler(companionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		garden := v1.Group("/garden")
		{
			garden.POST("/companion-list", planningHandler.GenerateCompanionList)
			garden.POST("/plan", planningHandler.GenerateGardenPlan)
		}

		plants := v1.Group("/plants")
		{
			plants.GET("", companionHandler.ListPlants)
			plants.GET("/:id/companions", companionHandler.GetPlantCompanions)
		}

		v1.GET("/compatibility", companionHandler.CheckCompatibility)

		if authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(authMiddleware.RequireAuth())
			{
				admin.GET("/dataset", companionHandler.DatasetStatus)
				admin.POST("/dataset/reload", companionHandler.ReloadDataset)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}
