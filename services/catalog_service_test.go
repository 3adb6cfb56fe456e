package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	categories []catalog.Category
	products   []catalog.Product
	err        error
	calls      int
}

func (f *fakeSource) LoadCatalog(ctx context.Context) ([]catalog.Category, []catalog.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.categories, f.products, nil
}

type fakeShared struct {
	snapshot *catalog.Snapshot
	loadErr  error
	saves    int
}

func (f *fakeShared) Load(ctx context.Context) (*catalog.Snapshot, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	return f.snapshot, f.snapshot != nil, nil
}

func (f *fakeShared) Save(ctx context.Context, snapshot *catalog.Snapshot) error {
	f.saves++
	f.snapshot = snapshot
	return nil
}

func (f *fakeShared) Invalidate(ctx context.Context) error {
	f.snapshot = nil
	return nil
}

func newSource() *fakeSource {
	return &fakeSource{
		categories: []catalog.Category{
			{ID: "A", Name: "Shoes", Properties: []catalog.PropertyDefinition{{Name: "Size", Values: []string{"40", "41"}}}},
			{ID: "B", Name: "Sneakers", Parent: catalog.Ref("A"), Properties: []catalog.PropertyDefinition{{Name: "Color", Values: []string{"White"}}}},
			{ID: "C", Name: "Shirts"},
		},
		products: []catalog.Product{
			{ID: "1", Title: "Loafer", Price: 10, Category: catalog.Ref("A"), CreatedAt: now.Add(-48 * time.Hour)},
			{ID: "2", Title: "Runner", Price: 20, Category: catalog.Ref("B"), CreatedAt: now.Add(-time.Hour),
				Properties: map[string]string{"Color": "White"}, Images: []string{"runner.jpg"}},
			{ID: "3", Title: "Oxford shirt", Price: 30, Category: catalog.Ref("C"), CreatedAt: now.Add(-30 * 24 * time.Hour)},
		},
	}
}

func newService(src CatalogSource, opts ...CatalogOption) *CatalogService {
	opts = append([]CatalogOption{WithClock(func() time.Time { return now }), WithLogger(zap.NewNop())}, opts...)
	return NewCatalogService(src, category_cache.NewMemory(time.Minute), opts...)
}

func TestCatalogService_Snapshot_CachesLocally(t *testing.T) {
	src := newSource()
	svc := newService(src)

	_, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	_, err = svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)

	require.NoError(t, svc.Invalidate(context.Background()))
	_, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCatalogService_Snapshot_UsesSharedCache(t *testing.T) {
	src := newSource()
	shared := &fakeShared{}
	first := newService(src, WithSharedCache(shared))

	_, err := first.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, shared.saves)

	second := newService(src, WithSharedCache(shared))
	snap, err := second.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "second instance must be served by the shared cache")
	assert.Len(t, snap.Products, 3)
}

func TestCatalogService_Snapshot_SharedCacheFailureFallsBack(t *testing.T) {
	src := newSource()
	svc := newService(src, WithSharedCache(&fakeShared{loadErr: errors.New("redis down")}))

	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Categories, 3)
	assert.Equal(t, 1, src.calls)
}

func TestCatalogService_Snapshot_SourceError(t *testing.T) {
	svc := newService(&fakeSource{err: errors.New("db down")})

	_, _, err := svc.Listing(context.Background(), ListingQuery{State: catalog.NewFilterState()})

	assert.ErrorContains(t, err, "db down")
}

func TestCatalogService_Listing(t *testing.T) {
	svc := newService(newSource())
	state := catalog.ToggleCategory(catalog.NewFilterState(), "A")

	listing, meta, err := svc.Listing(context.Background(), ListingQuery{State: state, Sort: catalog.SortPriceDesc, Page: 1, Limit: 12})

	require.NoError(t, err)
	require.Len(t, listing.Products, 2)
	assert.Equal(t, "2", listing.Products[0].ID)
	assert.Equal(t, "runner.jpg", listing.Products[0].Image)
	assert.Equal(t, "Shoes Products", listing.Title)
	assert.Equal(t, "Price: High to Low", listing.SortLabel)
	require.NotNil(t, listing.CategoryParam)
	assert.Equal(t, "A", *listing.CategoryParam)
	assert.True(t, listing.HasActive)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestCatalogService_Listing_Paginates(t *testing.T) {
	svc := newService(newSource())

	listing, meta, err := svc.Listing(context.Background(), ListingQuery{State: catalog.NewFilterState(), Sort: catalog.SortPriceAsc, Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	assert.Equal(t, "3", listing.Products[0].ID)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Nil(t, listing.CategoryParam)
	assert.Equal(t, "All Products", listing.Title)

	listing, _, err = svc.Listing(context.Background(), ListingQuery{State: catalog.NewFilterState(), Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, listing.Products)

	listing, meta, err = svc.Listing(context.Background(), ListingQuery{State: catalog.NewFilterState(), Page: math.MaxInt / 2, Limit: 12})
	require.NoError(t, err)
	assert.Empty(t, listing.Products, "offsets that would overflow are past the end")
	assert.Equal(t, 1, meta.TotalPages)
}

func TestCatalogService_Listing_DuplicateSelections(t *testing.T) {
	svc := newService(newSource())
	state := catalog.FilterState{
		Categories: []string{"A", "A"},
		Properties: map[string][]string{"Color": {"White", "White"}},
	}

	listing, _, err := svc.Listing(context.Background(), ListingQuery{State: state})

	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, listing.State.Categories)
	assert.Equal(t, []string{"White"}, listing.State.Properties["Color"])
	assert.Equal(t, "Shoes Products", listing.Title)
	require.NotNil(t, listing.CategoryParam)
	assert.Equal(t, "A", *listing.CategoryParam)
	assert.Len(t, listing.Tags, 2)

	toggled, _, err := svc.Transition(context.Background(), models.ListingRequest{
		State:  state,
		Action: &catalog.Action{Type: catalog.ActionToggleCategory, Category: "A"},
	})
	require.NoError(t, err)
	assert.Empty(t, toggled.State.Categories, "one toggle deselects a repeated id")
}

func TestCatalogService_Listing_NarrowMode(t *testing.T) {
	svc := newService(newSource(), WithCategoryMode(catalog.CategoryModeNarrow))
	state := catalog.FilterState{Categories: []string{"A", "B"}}

	listing, _, err := svc.Listing(context.Background(), ListingQuery{State: state})

	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	assert.Equal(t, "2", listing.Products[0].ID)
}

func TestCatalogService_Transition(t *testing.T) {
	svc := newService(newSource())

	listing, _, err := svc.Transition(context.Background(), models.ListingRequest{
		State:  catalog.NewFilterState(),
		Action: &catalog.Action{Type: catalog.ActionSetPrice, Bound: catalog.PriceMin, Value: "15"},
		Sort:   catalog.SortPriceAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, "15", listing.State.PriceRange.Min)
	require.Len(t, listing.Products, 2)
	assert.Equal(t, "2", listing.Products[0].ID)
	assert.Equal(t, []catalog.FilterTag{{Kind: catalog.TagPrice, Key: catalog.PriceMin, Label: "Min: 15"}}, listing.Tags)

	_, _, err = svc.Transition(context.Background(), models.ListingRequest{
		Action: &catalog.Action{Type: "launch"},
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestCatalogService_FilterMetadata(t *testing.T) {
	svc := newService(newSource())

	meta, err := svc.FilterMetadata(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, meta.Facets)
	assert.Equal(t, &models.PriceRangeData{Min: 10, Max: 30}, meta.PriceRange)
	require.Len(t, meta.Categories, 2)
	assert.Equal(t, 2, meta.Categories[0].ProductCount)
	assert.Len(t, meta.SortOptions, 6)
	assert.Equal(t, "union", meta.Mode)

	meta, err = svc.FilterMetadata(context.Background(), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, catalog.Facets{
		{Name: "Size", Values: []string{"40", "41"}},
		{Name: "Color", Values: []string{"White"}},
	}, meta.Facets)
}

func TestCatalogService_Facets(t *testing.T) {
	svc := newService(newSource())

	all, err := svc.Facets(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Size", "Color"}, facetNames(all))

	scoped, err := svc.Facets(context.Background(), []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Color"}, facetNames(scoped))
}

func facetNames(f catalog.Facets) []string {
	names := make([]string, len(f))
	for i, facet := range f {
		names[i] = facet.Name
	}
	return names
}

func TestCatalogService_CategoryByID(t *testing.T) {
	svc := newService(newSource())

	detail, err := svc.CategoryByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "Shoes", detail.Category.Name)
	require.Len(t, detail.Category.Subcategories, 1)
	assert.Equal(t, "B", detail.Category.Subcategories[0].ID)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "2", detail.Products[0].ID)

	_, err = svc.CategoryByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_ProductByID(t *testing.T) {
	svc := newService(newSource())

	card, err := svc.ProductByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Oxford shirt", card.Title)

	_, err = svc.ProductByID(context.Background(), "404")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_Showcase(t *testing.T) {
	svc := newService(newSource())

	sections, err := svc.Showcase(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].Category.ID)
	assert.Equal(t, 2, sections[0].Category.ProductCount)
	require.Len(t, sections[0].Products, 1)
	assert.Equal(t, "2", sections[0].Products[0].ID)
	assert.Equal(t, "C", sections[1].Category.ID)
}

func TestCatalogService_Recent(t *testing.T) {
	svc := newService(newSource())

	recent, err := svc.Recent(context.Background())

	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2", recent[0].ID)
	assert.Equal(t, "1", recent[1].ID)
}
