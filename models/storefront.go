// ════════════════════════════════════════════════════════════
// STOREFRONT LISTING MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import "github.com/Modeva-Ecommerce/modeva-storefront/catalog"

// StorefrontListing is one page of the product listing plus everything derived
// from the filter state.
type StorefrontListing struct {
	Products  []StorefrontProductResponse `json:"products"`
	Title     string                      `json:"title"`
	Tags      []catalog.FilterTag         `json:"tags"`
	Sort      catalog.SortKey             `json:"sort"`
	SortLabel string                      `json:"sort_label"`
	State     catalog.FilterState         `json:"state"`
	HasActive bool                        `json:"has_active_filters"`

	// CategoryParam mirrors the ?category= URL parameter: set only when
	// exactly one category is selected.
	CategoryParam *string `json:"category_param,omitempty"`
}

// ListingRequest carries a filter state, an optional action to apply to it
// and the sort key to present the result with.
type ListingRequest struct {
	State  catalog.FilterState `json:"state"`
	Action *catalog.Action     `json:"action,omitempty"`
	Sort   catalog.SortKey     `json:"sort"`
	Page   int                 `json:"page"`
	Limit  int                 `json:"limit"`
}

// CategoryDetail is a single category with its children and products.
type CategoryDetail struct {
	Category CategoryData                `json:"category"`
	Products []StorefrontProductResponse `json:"products"`
}

// ShowcaseSection groups the newest products of one top-level category.
type ShowcaseSection struct {
	Category      CategoryData                `json:"category"`
	Subcategories []CategoryData              `json:"subcategories"`
	Products      []StorefrontProductResponse `json:"products"`
}
