package category_controller

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryByID godoc
// @Summary Get category details
// @Description Single category with its subcategories and products, newest first
// @Tags store
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.CategoryDetail}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Param("id"))
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	detail, err := catalogService.CategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err, "Failed to fetch category")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", detail))
}
