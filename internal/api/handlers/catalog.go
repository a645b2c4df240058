package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/internal/service"
)

// HandleCatalogMatch handles POST /v1/catalog/match
func HandleCatalogMatch(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.MatchItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		matchService := service.NewMatchService(repos, logger)
		resp, err := matchService.MatchItem(c.Request.Context(), req.Name, req.Reference, req.Threshold)
		if err != nil {
			logger.Error("Failed to match item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
