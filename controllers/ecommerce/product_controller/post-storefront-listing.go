package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// PostStorefrontListing godoc
// @Summary Apply a filter action
// @Description Applies an optional action (toggle-category, toggle-property, set-price, remove-tag, clear-all) to the posted filter state and returns the resulting listing
// @Tags store
// @Accept json
// @Produce json
// @Param request body models.ListingRequest true "Filter state, action and sort key"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontListing}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/listing [post]
func PostStorefrontListing(c *gin.Context) {
	var req models.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing request"))
		return
	}

	if req.Sort == "" {
		req.Sort = catalog.DefaultSortKey
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > pageLimitMax {
		req.Limit = pageLimit
	}

	listing, meta, err := catalogService.Transition(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to update listing")
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Listing updated successfully", listing, meta))
}
