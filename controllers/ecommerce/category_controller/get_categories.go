package category_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Top-level categories with their subcategories; product counts of subcategories roll up into their parent
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryData}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := catalogService.CategoryTree(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
