// Package catalog is the storefront's listing engine: category hierarchy
// resolution, facet extraction, filtering, sorting and the derived
// presentation data (active filter tags, page title).
//
// Everything in this package is a pure function over in-memory values.
package catalog

import (
	"bytes"
	"encoding/json"
	"time"
)

// PropertyDefinition is a filterable property a category declares, e.g.
// {Name: "Color", Values: ["Red", "Blue"]}.
type PropertyDefinition struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Category is a node of the (two level) category tree.
type Category struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Parent     CategoryRef          `json:"parent"`
	Properties []PropertyDefinition `json:"properties,omitempty"`
}

// IsTopLevel reports whether the category has no parent reference.
func (c Category) IsTopLevel() bool {
	return c.Parent.IsZero()
}

// CategoryRef references a category either by id or by an embedded
// category object. Both decode to the same normalized id.
type CategoryRef struct {
	id string
}

// Ref returns a reference to the category with the given id.
func Ref(id string) CategoryRef {
	return CategoryRef{id: id}
}

// ID returns the normalized category id, empty when absent.
func (r CategoryRef) ID() string {
	return r.id
}

func (r CategoryRef) IsZero() bool {
	return r.id == ""
}

type embeddedCategory struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

// UnmarshalJSON accepts null, "id" or {"_id": "id", ...}.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.id = ""
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &r.id)
	}

	var obj embeddedCategory
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.id = obj.MongoID
	if r.id == "" {
		r.id = obj.ID
	}
	return nil
}

// MarshalJSON always emits the normalized form.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// Product is the slice of a product record the listing engine reads.
type Product struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Price      float64           `json:"price"`
	CreatedAt  time.Time         `json:"createdAt"`
	Category   CategoryRef       `json:"category"`
	Properties map[string]string `json:"properties,omitempty"`
	Images     []string          `json:"images,omitempty"`
}

// PriceRange holds raw price bounds. Empty or non-numeric means unbounded.
type PriceRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// FilterState is the complete set of active selections. It is treated as an
// immutable value: transitions in state.go return a new FilterState.
type FilterState struct {
	Categories []string            `json:"categories"`
	Properties map[string][]string `json:"properties"`
	PriceRange PriceRange          `json:"priceRange"`
}

// CategoryHierarchy is derived from a flat category list by BuildHierarchy.
type CategoryHierarchy struct {
	TopLevel   []Category            `json:"topLevel"`
	ChildrenOf map[string][]Category `json:"childrenOf"`
	ParentOf   map[string]string     `json:"parentOf"`
	// Orphans are categories whose parent is not a top-level category
	// (missing parent, self reference or deeper nesting). They are not part
	// of the tree.
	Orphans []Category `json:"orphans,omitempty"`
}

// IsTopLevel reports whether id is a top-level category of h.
func (h CategoryHierarchy) IsTopLevel(id string) bool {
	_, ok := h.ChildrenOf[id]
	return ok
}
