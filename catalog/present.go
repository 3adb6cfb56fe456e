package catalog

import (
	"fmt"
	"sort"
)

// TagKind tells which part of a FilterState an active filter tag came from.
type TagKind string

const (
	TagCategory TagKind = "category"
	TagProperty TagKind = "property"
	TagPrice    TagKind = "price"
)

// Price tag keys.
const (
	PriceMin = "min"
	PriceMax = "max"
)

const allProductsTitle = "All Products"

// FilterTag describes one applied filter so it can be rendered and removed.
// Key is the category id, the property value, or PriceMin / PriceMax.
type FilterTag struct {
	Kind     TagKind `json:"kind"`
	Property string  `json:"property,omitempty"`
	Key      string  `json:"key"`
	Label    string  `json:"label"`
}

// Presentation is the listing derived from a filtered product set.
type Presentation struct {
	Sorted []Product   `json:"products"`
	Tags   []FilterTag `json:"tags"`
	Title  string      `json:"title"`
}

// SortAndPresent orders the filtered products and derives the active filter
// tags and page title.
func SortAndPresent(products []Product, key SortKey, state FilterState, categories []Category) Presentation {
	return Presentation{
		Sorted: SortProducts(products, key),
		Tags:   ActiveFilterTags(state, categories),
		Title:  Title(state, categories),
	}
}

// ActiveFilterTags lists categories (selection order), property values
// (property names sorted, values in selection order) and price bounds.
// Selected ids that match no category produce no tag.
func ActiveFilterTags(state FilterState, categories []Category) []FilterTag {
	names := categoryNames(categories)
	tags := make([]FilterTag, 0)

	seen := make(map[string]struct{}, len(state.Categories))
	for _, id := range state.Categories {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		name, ok := names[id]
		if !ok {
			continue
		}
		tags = append(tags, FilterTag{Kind: TagCategory, Key: id, Label: name})
	}

	for _, prop := range sortedPropertyNames(state.Properties) {
		for _, value := range state.Properties[prop] {
			tags = append(tags, FilterTag{
				Kind:     TagProperty,
				Property: prop,
				Key:      value,
				Label:    fmt.Sprintf("%s: %s", prop, value),
			})
		}
	}

	if state.PriceRange.Min != "" {
		tags = append(tags, FilterTag{Kind: TagPrice, Key: PriceMin, Label: "Min: " + state.PriceRange.Min})
	}
	if state.PriceRange.Max != "" {
		tags = append(tags, FilterTag{Kind: TagPrice, Key: PriceMax, Label: "Max: " + state.PriceRange.Max})
	}
	return tags
}

// Title is "<name> Products" when exactly one known category is selected and
// "All Products" otherwise.
func Title(state FilterState, categories []Category) string {
	if len(state.Categories) != 1 {
		return allProductsTitle
	}
	for _, cat := range categories {
		if cat.ID == state.Categories[0] {
			return cat.Name + " Products"
		}
	}
	return allProductsTitle
}

func categoryNames(categories []Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		if _, ok := names[cat.ID]; !ok {
			names[cat.ID] = cat.Name
		}
	}
	return names
}

func sortedPropertyNames(props map[string][]string) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
