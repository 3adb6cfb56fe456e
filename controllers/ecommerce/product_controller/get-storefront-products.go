package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Filter, sort and paginate the storefront listing. Selecting a category includes its subcategories.
// @Tags store
// @Produce json
// @Param category query []string false "Category IDs (repeatable ?category=ID&category=ID)"
// @Param property query []string false "Property filters as name:value (repeatable ?property=Size:M&property=Color:Red)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "Sort key" Enums(newest, oldest, price-asc, price-desc, name-asc, name-desc) default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=models.StorefrontListing}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	listing, meta, err := catalogService.Listing(c.Request.Context(), services.ListingQuery{
		State: parseFilterState(c),
		Sort:  parseSortKey(c),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", listing, meta))
}
