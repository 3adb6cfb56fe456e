package filter_controller

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var catalogService *services.CatalogService

func Init(svc *services.CatalogService) {
	catalogService = svc
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns the category tree, the facets of the selected categories, the store's price range and the sort options
// @Tags store
// @Produce json
// @Param category query []string false "Selected category IDs (repeatable)"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	selected := make([]string, 0)
	for _, raw := range c.QueryArray("category") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				selected = append(selected, id)
			}
		}
	}

	metadata, err := catalogService.FilterMetadata(c.Request.Context(), selected)
	if err != nil {
		config.Log.Error("filter metadata failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
