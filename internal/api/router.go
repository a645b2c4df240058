package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/api/handlers"
	"github.com/veracrm/crmcore/internal/api/middleware"
	"github.com/veracrm/crmcore/internal/config"
	"github.com/veracrm/crmcore/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Client routes (require authentication)
		clientRoutes := v1.Group("")
		clientRoutes.Use(middleware.AuthMiddleware(repos, logger))
		{
			clientRoutes.POST("/catalog/match", handlers.HandleCatalogMatch(repos, logger))
			clientRoutes.POST("/proposals/calculate", handlers.HandleProposalCalculate(logger))
			clientRoutes.POST("/proposals", handlers.HandleCreateProposal(repos, logger))
			clientRoutes.GET("/proposals", handlers.HandleListProposals(repos, logger))
			clientRoutes.GET("/proposals/:id", handlers.HandleGetProposal(repos, logger))
			clientRoutes.POST("/proposals/:id/send", handlers.HandleSendProposal(repos, logger))
			clientRoutes.POST("/proposals/:id/accept", handlers.HandleAcceptProposal(repos, logger))
			clientRoutes.POST("/proposals/:id/reject", handlers.HandleRejectProposal(repos, logger))
			clientRoutes.POST("/imports/items", handlers.HandleImportItems(cfg, repos, logger))
		}

		// Admin routes (internal - for now using same auth, can be separated later)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(repos, logger))
		{
			adminRoutes.POST("/products", handlers.HandleCreateProduct(repos, logger))
			adminRoutes.GET("/products", handlers.HandleListProducts(repos, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
