package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/config"
	"github.com/veracrm/crmcore/internal/ingest"
	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/internal/service"
)

// HandleImportItems handles POST /v1/imports/items (multipart). Optional
// form fields override the column names looked up in the header row.
func HandleImportItems(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(cfg.Import.MaxUploadMB) << 20
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
			return
		}

		mapping := ingest.ColumnMapping{
			NameKey:      c.DefaultPostForm("name_column", "description"),
			ReferenceKey: c.DefaultPostForm("reference_column", "reference"),
			QuantityKey:  c.DefaultPostForm("quantity_column", "quantity"),
			UnitPriceKey: c.DefaultPostForm("price_column", "price"),
		}

		f, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open upload", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		defer f.Close()

		importService := service.NewImportService(repos, logger)
		report, err := importService.ImportItems(c.Request.Context(), f, fileHeader.Filename, mapping)
		if err != nil {
			logger.Error("Failed to import items", zap.Error(err), zap.String("filename", fileHeader.Filename))
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse file", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
