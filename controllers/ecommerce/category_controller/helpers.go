package category_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultShowcaseSize = 8

var catalogService *services.CatalogService

func Init(svc *services.CatalogService) {
	catalogService = svc
}

func selectedCategories(c *gin.Context) []string {
	ids := make([]string, 0)
	for _, raw := range c.QueryArray("category") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, services.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	config.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, message))
}
