// models/filters.go
package models

import "github.com/Modeva-Ecommerce/modeva-storefront/catalog"

// FilterMetadata is everything the filter sidebar needs to render.
type FilterMetadata struct {
	Categories  []CategoryData  `json:"categories"`
	Facets      catalog.Facets  `json:"facets"`
	PriceRange  *PriceRangeData `json:"priceRange"`
	SortOptions []SortOption    `json:"sortOptions"`
	Mode        string          `json:"categoryMode"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SortOption is one entry of the sort dropdown.
type SortOption struct {
	Key     catalog.SortKey `json:"key"`
	Label   string          `json:"label"`
	Default bool            `json:"default,omitempty"`
}

// NewSortOptions lists every recognized sort key with its label.
func NewSortOptions() []SortOption {
	options := make([]SortOption, len(catalog.SortKeys))
	for i, key := range catalog.SortKeys {
		options[i] = SortOption{
			Key:     key,
			Label:   catalog.SortLabel(key),
			Default: key == catalog.DefaultSortKey,
		}
	}
	return options
}
