package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/repository"
)

// CreateProductRequest represents create product request
type CreateProductRequest struct {
	Name                   string  `json:"name" binding:"required"`
	Code                   *string `json:"code,omitempty"`
	InternalSKU            *string `json:"internal_sku,omitempty"`
	ManufacturerPartNumber *string `json:"manufacturer_part_number,omitempty"`
	UnitCost               float64 `json:"unit_cost" binding:"min=0"`
	UnitPrice              float64 `json:"unit_price" binding:"min=0"`
}

// ProductResponse represents the product response
type ProductResponse struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Code                   *string `json:"code,omitempty"`
	InternalSKU            *string `json:"internal_sku,omitempty"`
	ManufacturerPartNumber *string `json:"manufacturer_part_number,omitempty"`
	UnitCost               float64 `json:"unit_cost"`
	UnitPrice              float64 `json:"unit_price"`
	IsActive               bool    `json:"is_active"`
}

// HandleCreateProduct handles POST /v1/admin/products
func HandleCreateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product := &domain.Product{
			Name:                   req.Name,
			Code:                   req.Code,
			InternalSKU:            req.InternalSKU,
			ManufacturerPartNumber: req.ManufacturerPartNumber,
			UnitCost:               req.UnitCost,
			UnitPrice:              req.UnitPrice,
			IsActive:               true,
		}

		if err := repos.Product.Create(c.Request.Context(), product); err != nil {
			logger.Error("Failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, productResponse(product))
	}
}

// HandleListProducts handles GET /v1/admin/products
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit <= 0 || limit > 200 {
			limit = 50
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		products, err := repos.Product.List(c.Request.Context(), limit, offset)
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		out := make([]ProductResponse, len(products))
		for i, p := range products {
			out[i] = productResponse(p)
		}

		c.JSON(http.StatusOK, gin.H{
			"products": out,
			"limit":    limit,
			"offset":   offset,
		})
	}
}

func productResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                     p.ID.String(),
		Name:                   p.Name,
		Code:                   p.Code,
		InternalSKU:            p.InternalSKU,
		ManufacturerPartNumber: p.ManufacturerPartNumber,
		UnitCost:               p.UnitCost,
		UnitPrice:              p.UnitPrice,
		IsActive:               p.IsActive,
	}
}
