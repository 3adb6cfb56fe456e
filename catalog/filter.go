package catalog

import (
	"math"
	"strconv"
	"strings"
)

// CategoryMode selects how jointly selected parent and child categories combine.
type CategoryMode int

const (
	// CategoryModeUnion matches products in any selected category or in any
	// child of a selected top-level category. Selection order never matters.
	CategoryModeUnion CategoryMode = iota

	// CategoryModeNarrow is the legacy listing behavior: when a top-level
	// category is selected together with some of its children, only those
	// children match and the parent's other children are suppressed.
	CategoryModeNarrow
)

// ParseCategoryMode maps "union" / "narrow" to a mode, defaulting to union.
func ParseCategoryMode(s string) CategoryMode {
	if strings.EqualFold(strings.TrimSpace(s), "narrow") {
		return CategoryModeNarrow
	}
	return CategoryModeUnion
}

func (m CategoryMode) String() string {
	if m == CategoryModeNarrow {
		return "narrow"
	}
	return "union"
}

// ApplyFilters returns the products matching every active predicate of state,
// in input order, using union category semantics.
func ApplyFilters(products []Product, state FilterState, h CategoryHierarchy) []Product {
	return ApplyFiltersWithMode(products, state, h, CategoryModeUnion)
}

// ApplyFiltersWithMode is ApplyFilters with an explicit category mode.
func ApplyFiltersWithMode(products []Product, state FilterState, h CategoryHierarchy, mode CategoryMode) []Product {
	accepted := acceptedCategories(state.Categories, h, mode)
	props := activeProperties(state.Properties)
	minPrice, hasMin := ParsePriceBound(state.PriceRange.Min)
	maxPrice, hasMax := ParsePriceBound(state.PriceRange.Max)

	result := make([]Product, 0, len(products))
	for _, p := range products {
		if accepted != nil {
			if _, ok := accepted[p.Category.ID()]; !ok {
				continue
			}
		}
		if len(props) > 0 && !matchesProperties(p, props) {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ExpandCategories returns the category ids a selection accepts, selected ids
// first, followed by implied children.
func ExpandCategories(selected []string, h CategoryHierarchy, mode CategoryMode) []string {
	if len(selected) == 0 {
		return []string{}
	}

	chosen := newOrderedSet(selected...)
	out := newOrderedSet[string]()

	if mode == CategoryModeNarrow {
		narrowed := make(map[string]bool)
		for _, id := range chosen.Items() {
			if parent, ok := h.ParentOf[id]; ok && chosen.Has(parent) {
				narrowed[parent] = true
			}
		}
		for _, id := range chosen.Items() {
			if !narrowed[id] {
				out.Add(id)
			}
		}
		for _, id := range chosen.Items() {
			if h.IsTopLevel(id) && !narrowed[id] {
				for _, child := range h.Children(id) {
					out.Add(child)
				}
			}
		}
		return out.Items()
	}

	for _, id := range chosen.Items() {
		out.Add(id)
	}
	for _, id := range chosen.Items() {
		for _, child := range h.Children(id) {
			out.Add(child)
		}
	}
	return out.Items()
}

// acceptedCategories returns nil when no category predicate is active.
func acceptedCategories(selected []string, h CategoryHierarchy, mode CategoryMode) map[string]struct{} {
	if len(selected) == 0 {
		return nil
	}
	ids := ExpandCategories(selected, h, mode)
	accepted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		accepted[id] = struct{}{}
	}
	return accepted
}

type propertyFilter struct {
	name   string
	values map[string]struct{}
}

func activeProperties(selected map[string][]string) []propertyFilter {
	filters := make([]propertyFilter, 0, len(selected))
	for name, values := range selected {
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		filters = append(filters, propertyFilter{name: name, values: set})
	}
	return filters
}

func matchesProperties(p Product, filters []propertyFilter) bool {
	if p.Properties == nil {
		return false
	}
	for _, f := range filters {
		value, ok := p.Properties[f.name]
		if !ok {
			return false
		}
		if _, ok := f.values[value]; !ok {
			return false
		}
	}
	return true
}

// ParsePriceBound parses a raw price bound. Empty, non-numeric and NaN
// values are reported as unset.
func ParsePriceBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
