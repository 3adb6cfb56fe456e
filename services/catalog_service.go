package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	category_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidAction    = errors.New("invalid filter action")
)

// SnapshotStore is a cache shared between storefront instances.
type SnapshotStore interface {
	Load(ctx context.Context) (*catalog.Snapshot, bool, error)
	Save(ctx context.Context, snapshot *catalog.Snapshot) error
	Invalidate(ctx context.Context) error
}

// CatalogService answers storefront queries from a cached catalog snapshot.
type CatalogService struct {
	source       CatalogSource
	memory       *category_cache.Memory
	shared       SnapshotStore
	mode         catalog.CategoryMode
	recentWindow time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

type CatalogOption func(*CatalogService)

// WithSharedCache adds a second cache level consulted on local misses.
func WithSharedCache(store SnapshotStore) CatalogOption {
	return func(s *CatalogService) { s.shared = store }
}

// WithCategoryMode switches how parent and child selections combine.
func WithCategoryMode(mode catalog.CategoryMode) CatalogOption {
	return func(s *CatalogService) { s.mode = mode }
}

func WithRecentWindow(window time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if window > 0 {
			s.recentWindow = window
		}
	}
}

func WithLogger(logger *zap.Logger) CatalogOption {
	return func(s *CatalogService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) CatalogOption {
	return func(s *CatalogService) { s.now = now }
}

func NewCatalogService(source CatalogSource, memory *category_cache.Memory, opts ...CatalogOption) *CatalogService {
	if memory == nil {
		memory = category_cache.NewMemory(category_cache.TTL)
	}
	s := &CatalogService{
		source:       source,
		memory:       memory,
		mode:         catalog.CategoryModeUnion,
		recentWindow: catalog.RecentWindow,
		logger:       zap.NewNop(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports the configured category mode.
func (s *CatalogService) Mode() catalog.CategoryMode {
	return s.mode
}

// Snapshot returns the current catalog, trying the local cache, then the
// shared cache, then the source. Shared cache failures are logged and skipped.
func (s *CatalogService) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if snap, ok := s.memory.Get(); ok {
		return snap, nil
	}

	if s.shared != nil {
		snap, ok, err := s.shared.Load(ctx)
		if err != nil {
			s.logger.Warn("shared catalog cache unavailable", zap.Error(err))
		} else if ok {
			s.memory.Set(snap)
			return snap, nil
		}
	}

	categories, products, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	snap := catalog.NewSnapshot(categories, products, s.now())
	if len(snap.Hierarchy.Orphans) > 0 {
		s.logger.Warn("categories outside the two level tree are ignored",
			zap.Int("count", len(snap.Hierarchy.Orphans)))
	}

	s.memory.Set(snap)
	if s.shared != nil {
		if err := s.shared.Save(ctx, snap); err != nil {
			s.logger.Warn("failed to store catalog in shared cache", zap.Error(err))
		}
	}
	s.logger.Debug("catalog loaded",
		zap.Int("categories", len(snap.Categories)),
		zap.Int("products", len(snap.Products)))
	return snap, nil
}

// Invalidate drops both cache levels.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	s.memory.Invalidate()
	if s.shared != nil {
		return s.shared.Invalidate(ctx)
	}
	return nil
}

// ListingQuery selects one page of the product listing.
type ListingQuery struct {
	State catalog.FilterState
	Sort  catalog.SortKey
	Page  int
	Limit int
}

// Listing filters, sorts and paginates the catalog for a filter state.
func (s *CatalogService) Listing(ctx context.Context, q ListingQuery) (*models.StorefrontListing, *models.Pagination, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	state := q.State.Clone()
	filtered := catalog.ApplyFiltersWithMode(snap.Products, state, snap.Hierarchy, s.mode)
	view := catalog.SortAndPresent(filtered, q.Sort, state, snap.Categories)

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(view.Sorted)
	}
	listing := &models.StorefrontListing{
		Products:  models.NewStorefrontProducts(paginate(view.Sorted, page, limit)),
		Title:     view.Title,
		Tags:      view.Tags,
		Sort:      q.Sort,
		SortLabel: catalog.SortLabel(q.Sort),
		State:     state,
		HasActive: catalog.HasActiveFilters(state),
	}
	if len(state.Categories) == 1 {
		id := state.Categories[0]
		listing.CategoryParam = &id
	}
	return listing, models.NewPagination(page, limit, len(view.Sorted)), nil
}

// Transition applies the request's action to its state, then lists the result.
func (s *CatalogService) Transition(ctx context.Context, req models.ListingRequest) (*models.StorefrontListing, *models.Pagination, error) {
	state := req.State.Clone()
	if req.Action != nil {
		next, err := catalog.Reduce(state, *req.Action)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		state = next
	}
	return s.Listing(ctx, ListingQuery{State: state, Sort: req.Sort, Page: req.Page, Limit: req.Limit})
}

// FilterMetadata describes the sidebar for the given selection: the category
// tree, the facets of the selected categories and the store's price range.
func (s *CatalogService) FilterMetadata(ctx context.Context, selected []string) (*models.FilterMetadata, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	relevant := catalog.ExpandCategories(selected, snap.Hierarchy, s.mode)
	meta := &models.FilterMetadata{
		Categories:  models.NewCategoryTree(snap.Hierarchy, catalog.CountByCategory(snap.Products, snap.Hierarchy, true)),
		Facets:      catalog.ExtractFacetsFor(snap.Categories, relevant),
		SortOptions: models.NewSortOptions(),
		Mode:        s.mode.String(),
	}
	if lo, hi, ok := catalog.PriceBounds(snap.Products); ok {
		meta.PriceRange = &models.PriceRangeData{Min: lo, Max: hi}
	} else {
		meta.PriceRange = &models.PriceRangeData{}
	}
	return meta, nil
}

// Facets returns the properties of the selected categories (children
// included). An empty selection describes every category in the store.
func (s *CatalogService) Facets(ctx context.Context, selected []string) (catalog.Facets, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return catalog.ExtractFacets(snap.Categories), nil
	}
	return catalog.ExtractFacetsFor(snap.Categories, catalog.ExpandCategories(selected, snap.Hierarchy, s.mode)), nil
}

// CategoryTree returns the top-level categories with their children and
// product counts (children roll up into parents).
func (s *CatalogService) CategoryTree(ctx context.Context) ([]models.CategoryData, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	counts := catalog.CountByCategory(snap.Products, snap.Hierarchy, true)
	return models.NewCategoryTree(snap.Hierarchy, counts), nil
}

// CategoryByID returns a category, its children and its products newest first.
func (s *CatalogService) CategoryByID(ctx context.Context, id string) (*models.CategoryDetail, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	cat, ok := snap.Category(id)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	counts := catalog.CountByCategory(snap.Products, snap.Hierarchy, true)
	node := models.NewCategoryData(cat, counts)
	for _, child := range snap.Hierarchy.ChildrenOf[id] {
		node.Subcategories = append(node.Subcategories, models.NewCategoryData(child, counts))
	}

	state := catalog.ToggleCategory(catalog.NewFilterState(), id)
	products := catalog.ApplyFilters(snap.Products, state, snap.Hierarchy)
	return &models.CategoryDetail{
		Category: node,
		Products: models.NewStorefrontProducts(catalog.SortProducts(products, catalog.SortNewest)),
	}, nil
}

// ProductByID returns a single product card.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.StorefrontProductResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := snap.Product(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	card := models.NewStorefrontProduct(p)
	return &card, nil
}

// Showcase returns one section per top-level category, in tree order, with
// the category's newest products (children included). Empty sections are
// skipped.
func (s *CatalogService) Showcase(ctx context.Context, perSection int) ([]models.ShowcaseSection, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	groups := catalog.GroupByTopLevel(snap.Products, snap.Hierarchy)
	counts := catalog.CountByCategory(snap.Products, snap.Hierarchy, true)
	sections := make([]models.ShowcaseSection, 0, len(groups))
	for _, parent := range snap.Hierarchy.TopLevel {
		products := groups[parent.ID]
		if len(products) == 0 {
			continue
		}
		if perSection > 0 && len(products) > perSection {
			products = products[:perSection]
		}
		subs := make([]models.CategoryData, 0, len(snap.Hierarchy.ChildrenOf[parent.ID]))
		for _, child := range snap.Hierarchy.ChildrenOf[parent.ID] {
			subs = append(subs, models.NewCategoryData(child, counts))
		}
		sections = append(sections, models.ShowcaseSection{
			Category:      models.NewCategoryData(parent, counts),
			Subcategories: subs,
			Products:      models.NewStorefrontProducts(products),
		})
	}
	return sections, nil
}

// Recent returns the products added within the recent window, newest first.
func (s *CatalogService) Recent(ctx context.Context) ([]models.StorefrontProductResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewStorefrontProducts(catalog.RecentProducts(snap.Products, s.now(), s.recentWindow)), nil
}

// paginate returns one page of products. Pages past the end are empty; the
// page count is compared before multiplying so huge page numbers cannot
// overflow the offset.
func paginate(products []catalog.Product, page, limit int) []catalog.Product {
	if page < 1 || limit < 1 || len(products) == 0 {
		return []catalog.Product{}
	}
	pages := (len(products) + limit - 1) / limit
	if page > pages {
		return []catalog.Product{}
	}
	start := (page - 1) * limit
	end := min(start+limit, len(products))
	return products[start:end]
}
