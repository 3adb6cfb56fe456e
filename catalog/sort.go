package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a listing order.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"

	DefaultSortKey = SortNewest
)

// SortKeys lists the recognized keys in the order the storefront offers them.
var SortKeys = []SortKey{SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}

var sortLabels = map[SortKey]string{
	SortNewest:    "Newest First",
	SortOldest:    "Oldest First",
	SortPriceAsc:  "Price: Low to High",
	SortPriceDesc: "Price: High to Low",
	SortNameAsc:   "Name: A to Z",
	SortNameDesc:  "Name: Z to A",
}

// Valid reports whether k is a recognized sort key.
func (k SortKey) Valid() bool {
	_, ok := sortLabels[k]
	return ok
}

// SortLabel returns the display label of a key, "Sort by" when unrecognized.
func SortLabel(k SortKey) string {
	if label, ok := sortLabels[k]; ok {
		return label
	}
	return "Sort by"
}

// SortProducts returns a sorted copy of products. Ties keep their input order
// and an unrecognized key leaves the order untouched.
func SortProducts(products []Product, key SortKey) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}

	var compare func(a, b Product) int
	switch key {
	case SortPriceAsc:
		compare = func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		compare = func(a, b Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortNewest:
		compare = func(a, b Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortOldest:
		compare = func(a, b Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortNameAsc, SortNameDesc:
		// Collators keep internal buffers, so one per call.
		c := collate.New(language.English)
		if key == SortNameAsc {
			compare = func(a, b Product) int { return c.CompareString(a.Title, b.Title) }
		} else {
			compare = func(a, b Product) int { return c.CompareString(b.Title, a.Title) }
		}
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
