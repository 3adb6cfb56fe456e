package product_controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
)

var (
	catalogService *services.CatalogService
	pageLimit      = defaultPageLimit
	pageLimitMax   = maxPageLimit
)

// Init wires the handlers to the catalog service. Non-positive limits keep
// the defaults.
func Init(svc *services.CatalogService, defaultLimit, maxLimit int) {
	catalogService = svc
	if defaultLimit > 0 {
		pageLimit = defaultLimit
	}
	if maxLimit > 0 {
		pageLimitMax = maxLimit
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pageLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > pageLimitMax {
		limit = pageLimit
	}

	return page, limit
}

// parseFilterState reads the listing filters from the query string:
//
//	?category=ID&category=ID&property=Size:M&minPrice=10&maxPrice=50
//
// Price bounds are kept verbatim; unparseable bounds are ignored when filtering.
func parseFilterState(c *gin.Context) catalog.FilterState {
	state := catalog.NewFilterState()

	seen := make(map[string]struct{})
	for _, raw := range c.QueryArray("category") {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			state.Categories = append(state.Categories, id)
		}
	}

	for _, raw := range c.QueryArray("property") {
		name, value, ok := strings.Cut(raw, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			continue
		}
		if containsValue(state.Properties[name], value) {
			continue
		}
		state.Properties[name] = append(state.Properties[name], value)
	}

	state.PriceRange.Min = strings.TrimSpace(c.Query("minPrice"))
	state.PriceRange.Max = strings.TrimSpace(c.Query("maxPrice"))
	return state
}

func parseSortKey(c *gin.Context) catalog.SortKey {
	return catalog.SortKey(c.DefaultQuery("sort", string(catalog.DefaultSortKey)))
}

func containsValue(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

// respondError maps service errors to status codes; anything unexpected is
// logged and reported as a 500.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
	case errors.Is(err, services.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	default:
		config.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, message))
	}
}
