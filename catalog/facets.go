package catalog

// Facet is a filterable property with the distinct values observed for it.
type Facet struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Facets keeps facets in first-seen order.
type Facets []Facet

// Lookup returns the values of the named facet.
func (f Facets) Lookup(name string) ([]string, bool) {
	for _, facet := range f {
		if facet.Name == name {
			return facet.Values, true
		}
	}
	return nil, false
}

// AsMap flattens the facets into a name -> values mapping.
func (f Facets) AsMap() map[string][]string {
	m := make(map[string][]string, len(f))
	for _, facet := range f {
		m[facet.Name] = facet.Values
	}
	return m
}

// ExtractFacets unions the property definitions of every category.
func ExtractFacets(categories []Category) Facets {
	return collectFacets(categories, nil)
}

// ExtractFacetsFor unions the property definitions of the relevant categories
// only. No relevant categories yields no facets: properties are shown once a
// category is selected.
func ExtractFacetsFor(categories []Category, relevant []string) Facets {
	if len(relevant) == 0 {
		return Facets{}
	}
	keep := make(map[string]struct{}, len(relevant))
	for _, id := range relevant {
		keep[id] = struct{}{}
	}
	return collectFacets(categories, keep)
}

func collectFacets(categories []Category, keep map[string]struct{}) Facets {
	names := newOrderedSet[string]()
	values := make(map[string]*orderedSet[string])

	for _, cat := range categories {
		if keep != nil {
			if _, ok := keep[cat.ID]; !ok {
				continue
			}
		}
		for _, prop := range cat.Properties {
			if prop.Name == "" {
				continue
			}
			names.Add(prop.Name)
			set, ok := values[prop.Name]
			if !ok {
				set = newOrderedSet[string]()
				values[prop.Name] = set
			}
			for _, v := range prop.Values {
				set.Add(v)
			}
		}
	}

	facets := make(Facets, 0, names.Len())
	for _, name := range names.Items() {
		facets = append(facets, Facet{Name: name, Values: values[name].Items()})
	}
	return facets
}

// orderedSet is a set that remembers insertion order.
type orderedSet[T comparable] struct {
	items []T
	seen  map[T]struct{}
}

func newOrderedSet[T comparable](items ...T) *orderedSet[T] {
	s := &orderedSet[T]{seen: make(map[T]struct{})}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *orderedSet[T]) Add(item T) bool {
	if _, ok := s.seen[item]; ok {
		return false
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet[T]) Has(item T) bool {
	_, ok := s.seen[item]
	return ok
}

func (s *orderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the members in insertion order.
func (s *orderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
