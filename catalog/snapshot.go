package catalog

import "time"

// Snapshot is the full category and product set a listing is computed over,
// with the hierarchy derived from it.
type Snapshot struct {
	Categories []Category        `json:"categories"`
	Products   []Product         `json:"products"`
	Hierarchy  CategoryHierarchy `json:"-"`
	FetchedAt  time.Time         `json:"fetchedAt"`
}

// NewSnapshot builds the hierarchy for categories and stamps the snapshot.
func NewSnapshot(categories []Category, products []Product, fetchedAt time.Time) *Snapshot {
	if categories == nil {
		categories = []Category{}
	}
	if products == nil {
		products = []Product{}
	}
	return &Snapshot{
		Categories: categories,
		Products:   products,
		Hierarchy:  BuildHierarchy(categories),
		FetchedAt:  fetchedAt,
	}
}

// Category looks up a category by id.
func (s *Snapshot) Category(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Product looks up a product by id.
func (s *Snapshot) Product(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
