package models

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCategory_ToCatalog(t *testing.T) {
	parent := uuid.Must(uuid.NewV7())
	row := Category{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       "Boots",
		ParentID:   &parent,
		Properties: datatypes.NewJSONSlice([]catalog.PropertyDefinition{{Name: "Size", Values: []string{"42"}}}),
	}

	got := row.ToCatalog()

	assert.Equal(t, row.ID.String(), got.ID)
	assert.Equal(t, parent.String(), got.Parent.ID())
	assert.False(t, got.IsTopLevel())
	assert.Equal(t, []catalog.PropertyDefinition{{Name: "Size", Values: []string{"42"}}}, got.Properties)

	row.ParentID = nil
	assert.True(t, row.ToCatalog().IsTopLevel())
}

func TestProduct_ToCatalog(t *testing.T) {
	cat := uuid.Must(uuid.NewV7())
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	row := Product{
		ID:         uuid.Must(uuid.NewV7()),
		Title:      "Runner",
		Price:      65.5,
		CategoryID: &cat,
		Images:     datatypes.NewJSONSlice([]string{"a.jpg", "b.jpg"}),
		Properties: datatypes.JSONMap{"Size": 42, "Color": "White", "Missing": nil},
		CreatedAt:  created,
	}

	got := row.ToCatalog()

	assert.Equal(t, cat.String(), got.Category.ID())
	assert.Equal(t, map[string]string{"Size": "42", "Color": "White"}, got.Properties)
	assert.Equal(t, created, got.CreatedAt)

	card := NewStorefrontProduct(got)
	assert.Equal(t, "a.jpg", card.Image)
	assert.Equal(t, cat.String(), card.CategoryID)

	row.Properties = nil
	assert.Nil(t, row.ToCatalog().Properties)
}

func TestNewStorefrontProducts_NeverNil(t *testing.T) {
	cards := NewStorefrontProducts(nil)
	require.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestNewCategoryTree(t *testing.T) {
	h := catalog.BuildHierarchy([]catalog.Category{
		{ID: "shoes", Name: "Shoes"},
		{ID: "boots", Name: "Boots", Parent: catalog.Ref("shoes")},
		{ID: "hats", Name: "Hats"},
	})

	tree := NewCategoryTree(h, map[string]int{"shoes": 3, "boots": 2})

	require.Len(t, tree, 2)
	assert.Equal(t, 3, tree[0].ProductCount)
	require.Len(t, tree[0].Subcategories, 1)
	assert.Equal(t, "shoes", tree[0].Subcategories[0].ParentID)
	assert.Equal(t, 2, tree[0].Subcategories[0].ProductCount)
	assert.Equal(t, 0, tree[1].ProductCount)
	assert.NotNil(t, tree[1].Subcategories)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, &Pagination{Page: 1, Limit: 12, Total: 25, TotalPages: 3}, NewPagination(1, 12, 25))
	assert.Equal(t, 0, NewPagination(1, 12, 0).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 5).TotalPages)
}

func TestNewSortOptions(t *testing.T) {
	options := NewSortOptions()

	require.Len(t, options, len(catalog.SortKeys))
	assert.Equal(t, SortOption{Key: catalog.SortNewest, Label: "Newest First", Default: true}, options[0])
	assert.Equal(t, "Name: Z to A", options[5].Label)
}

func TestResponses_CarryRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/store/products", nil)
	rate := &RateLimiter{Limit: 10, Remaining: 9}
	c.Set(RateLimiterContextKey, rate)

	resp := PaginatedResponse(c, "ok", []string{"a"}, NewPagination(1, 1, 1))
	assert.Same(t, rate, resp.Rate)
	assert.False(t, resp.Error)
	assert.NotNil(t, resp.Meta)

	errResp := ErrorResponse(nil, "boom")
	assert.True(t, errResp.Error)
	assert.Nil(t, errResp.Rate)
}
