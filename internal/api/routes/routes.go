package routes

import (
	"fmt"

	"business-manager-backend/internal/api/handlers"
	"business-manager-backend/internal/api/middleware"
	"business-manager-backend/internal/auth"
	"business-manager-backend/internal/config"
	"business-manager-backend/internal/logger"
	"business-manager-backend/internal/repository"
	"business-manager-backend/internal/schema"
	"business-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	registry := schema.Default()
	gatewayRepo := repository.NewGatewayRepository(db, registry)
	catalogRepo := repository.NewCatalogRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	gatewayService := service.NewGatewayService(gatewayRepo, registry, validator, cfg.MaxPageSize)
	proposalService := service.NewProposalService(proposalRepo, catalogRepo, validator)
	projectService := service.NewProjectService(projectRepo, catalogRepo, validator)

	// Resolve who is acting on each request
	var actor gin.HandlerFunc
	if cfg.AuthDisabled {
		logger.New().WithField("user", cfg.LocalUserID).Warn("Authentication disabled, attributing every request to the local user")
		actor = auth.LocalActor(cfg.LocalUserID)
	} else {
		authService, err := auth.NewAuthService(cfg.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("initialize auth: %w", err)
		}
		actor = auth.NewAuthMiddleware(authService).RequireAuth()
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gatewayHandler := handlers.NewGatewayHandler(gatewayService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - every endpoint needs an actor
	v1 := router.Group("/api/v1")
	v1.Use(actor)
	{
		// Generic table access for the desktop client
		gateway := v1.Group("/gateway")
		{
			gateway.POST("/query", gatewayHandler.Query)
			gateway.POST("/count", gatewayHandler.Count)
			gateway.POST("/create", gatewayHandler.Create)
			gateway.POST("/update", gatewayHandler.Update)
			gateway.POST("/delete", gatewayHandler.Delete)
		}

		// Proposal routes
		proposals := v1.Group("/proposals")
		{
			proposals.POST("", proposalHandler.CreateProposal)
			proposals.GET("/:id", proposalHandler.GetProposal)
			proposals.DELETE("/:id", proposalHandler.DeleteProposal)
			proposals.GET("/:id/total", proposalHandler.GetProposalTotal)
			proposals.PUT("/:id/status", proposalHandler.UpdateProposalStatus)
			proposals.POST("/:id/convert", proposalHandler.ConvertToProject)
			proposals.POST("/:id/line-items", proposalHandler.AddLineItem)
			proposals.PUT("/:id/line-items/:itemId", proposalHandler.UpdateLineItem)
			proposals.DELETE("/:id/line-items/:itemId", proposalHandler.RemoveLineItem)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/total", projectHandler.GetProjectTotal)
			projects.GET("/:id/progress", projectHandler.GetProjectProgress)
			projects.PUT("/:id/status", projectHandler.UpdateProjectStatus)
			projects.POST("/:id/line-items", projectHandler.AddLineItem)
			projects.DELETE("/:id/line-items/:itemId", projectHandler.RemoveLineItem)
		}

		v1.PUT("/project-services/:id/status", projectHandler.UpdateProjectServiceStatus)
	}

	return router, nil
}
