package catalog

// BuildHierarchy converts a flat category list into top-level categories and
// their direct children, preserving input order.
//
// Only two levels are supported. A category whose parent is missing, is
// itself a child, or is the category itself ends up in Orphans and is not
// reachable through the hierarchy. The parent reference is never followed
// more than one step, so cycles cannot loop.
func BuildHierarchy(categories []Category) CategoryHierarchy {
	h := CategoryHierarchy{
		TopLevel:   make([]Category, 0),
		ChildrenOf: make(map[string][]Category),
		ParentOf:   make(map[string]string),
	}

	// First pass: parentless categories
	for _, cat := range categories {
		if !cat.IsTopLevel() {
			continue
		}
		if _, seen := h.ChildrenOf[cat.ID]; seen {
			continue
		}
		h.TopLevel = append(h.TopLevel, cat)
		h.ChildrenOf[cat.ID] = make([]Category, 0)
	}

	// Second pass: attach children to known top-level parents
	for _, cat := range categories {
		if cat.IsTopLevel() {
			continue
		}
		parentID := cat.Parent.ID()
		children, ok := h.ChildrenOf[parentID]
		if !ok || parentID == cat.ID {
			h.Orphans = append(h.Orphans, cat)
			continue
		}
		h.ChildrenOf[parentID] = append(children, cat)
		h.ParentOf[cat.ID] = parentID
	}

	return h
}

// Children returns the ids of the direct children of a top-level category.
func (h CategoryHierarchy) Children(id string) []string {
	children := h.ChildrenOf[id]
	ids := make([]string, len(children))
	for i, child := range children {
		ids[i] = child.ID
	}
	return ids
}

// TopLevelOf resolves the top-level ancestor of id. Top-level ids resolve to
// themselves; unknown and orphaned ids report false.
func (h CategoryHierarchy) TopLevelOf(id string) (string, bool) {
	if h.IsTopLevel(id) {
		return id, true
	}
	parent, ok := h.ParentOf[id]
	return parent, ok
}
