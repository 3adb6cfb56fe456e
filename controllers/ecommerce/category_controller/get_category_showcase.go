package category_controller

import (
	"net/http"
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryShowcase godoc
// @Summary Get the category showcase
// @Description One section per top-level category with its newest products; empty categories are skipped
// @Tags store
// @Produce json
// @Param limit query int false "Products per section" default(8)
// @Success 200 {object} models.ApiResponse{data=[]models.ShowcaseSection}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/showcase [get]
func GetCategoryShowcase(c *gin.Context) {
	perSection, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultShowcaseSize)))
	if err != nil || perSection < 1 {
		perSection = defaultShowcaseSize
	}

	sections, err := catalogService.Showcase(c.Request.Context(), perSection)
	if err != nil {
		respondError(c, err, "Failed to fetch showcase")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Showcase fetched successfully", sections))
}
