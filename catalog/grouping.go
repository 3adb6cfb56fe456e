package catalog

import (
	"time"
)

// RecentWindow is how far back the storefront looks for new arrivals.
const RecentWindow = 7 * 24 * time.Hour

// GroupByTopLevel buckets products under the top-level category they belong
// to, directly or through a child. Each bucket is newest first. Products in
// unknown or orphaned categories are left out.
func GroupByTopLevel(products []Product, h CategoryHierarchy) map[string][]Product {
	groups := make(map[string][]Product)
	for _, p := range products {
		top, ok := h.TopLevelOf(p.Category.ID())
		if !ok {
			continue
		}
		groups[top] = append(groups[top], p)
	}
	for id, group := range groups {
		groups[id] = SortProducts(group, SortNewest)
	}
	return groups
}

// RecentProducts returns the products created within window before now,
// newest first.
func RecentProducts(products []Product, now time.Time, window time.Duration) []Product {
	cutoff := now.Add(-window)
	recent := make([]Product, 0)
	for _, p := range products {
		if !p.CreatedAt.Before(cutoff) {
			recent = append(recent, p)
		}
	}
	return SortProducts(recent, SortNewest)
}

// CountByCategory counts products per category id. With rollup, products of a
// child also count towards its top-level parent.
func CountByCategory(products []Product, h CategoryHierarchy, rollup bool) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		id := p.Category.ID()
		if id == "" {
			continue
		}
		counts[id]++
		if rollup {
			if parent, ok := h.ParentOf[id]; ok {
				counts[parent]++
			}
		}
	}
	return counts
}

// PriceBounds returns the lowest and highest price of products. ok is false
// for an empty list.
func PriceBounds(products []Product) (lo, hi float64, ok bool) {
	for i, p := range products {
		if i == 0 || p.Price < lo {
			lo = p.Price
		}
		if i == 0 || p.Price > hi {
			hi = p.Price
		}
	}
	return lo, hi, len(products) > 0
}
