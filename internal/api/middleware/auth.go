package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/pkg/errors"
)

const clientContextKey = "api_client"

// AuthMiddleware authenticates requests by bearer API key
func AuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		apiKey := strings.TrimPrefix(header, "Bearer ")
		if apiKey == header || apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		client, err := repos.APIClient.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if _, ok := err.(*errors.ErrUnauthorized); ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				return
			}
			logger.Error("Failed to authenticate API key", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(clientContextKey, client)
		c.Next()
	}
}

// GetClientFromContext returns the authenticated API client, if any
func GetClientFromContext(c *gin.Context) (*domain.APIClient, bool) {
	v, ok := c.Get(clientContextKey)
	if !ok {
		return nil, false
	}
	client, ok := v.(*domain.APIClient)
	return client, ok
}
