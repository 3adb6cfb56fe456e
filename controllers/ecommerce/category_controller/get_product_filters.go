package category_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetProductFilters godoc
// @Summary Get available product filters
// @Description Property facets of the selected categories and their subcategories, or of every category when none is selected
// @Tags store
// @Produce json
// @Param category query []string false "Category IDs (repeatable ?category=ID&category=ID)"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/filters [get]
func GetProductFilters(c *gin.Context) {
	facets, err := catalogService.Facets(c.Request.Context(), selectedCategories(c))
	if err != nil {
		respondError(c, err, "Failed to fetch product filters")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product filters fetched successfully", facets))
}
