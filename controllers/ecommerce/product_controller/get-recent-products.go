package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetRecentProducts godoc
// @Summary Get new arrivals
// @Description Products added within the recent window, newest first
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/recent [get]
func GetRecentProducts(c *gin.Context) {
	products, err := catalogService.Recent(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch recent products")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent products fetched successfully", products))
}
