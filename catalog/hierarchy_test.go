package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHierarchy_TwoLevels(t *testing.T) {
	h := BuildHierarchy(storeCategories())

	require.Len(t, h.TopLevel, 2)
	assert.Equal(t, "shoes", h.TopLevel[0].ID)
	assert.Equal(t, "shirts", h.TopLevel[1].ID)
	assert.Equal(t, []string{"sneakers", "boots"}, h.Children("shoes"))
	assert.Equal(t, []string{"tees"}, h.Children("shirts"))
	assert.Equal(t, map[string]string{"sneakers": "shoes", "boots": "shoes", "tees": "shirts"}, h.ParentOf)
	assert.Empty(t, h.Orphans)
}

func TestBuildHierarchy_Empty(t *testing.T) {
	h := BuildHierarchy(nil)

	assert.Empty(t, h.TopLevel)
	assert.Empty(t, h.ChildrenOf)
	assert.Empty(t, h.ParentOf)
}

func TestBuildHierarchy_IsDeterministic(t *testing.T) {
	cats := storeCategories()

	assert.Equal(t, BuildHierarchy(cats), BuildHierarchy(cats))
}

func TestBuildHierarchy_DropsUnresolvableChildren(t *testing.T) {
	cats := []Category{
		top("a", "A"),
		child("b", "B", "a"),
		child("c", "C", "b"),       // grandchild, deeper than supported
		child("d", "D", "missing"), // unknown parent
		child("e", "E", "e"),       // self reference
		child("f", "F", "g"),       // two node cycle
		child("g", "G", "f"),
	}

	h := BuildHierarchy(cats)

	assert.Equal(t, []string{"b"}, h.Children("a"))
	assert.Len(t, h.TopLevel, 1)
	assert.Len(t, h.Orphans, 5)
	_, ok := h.ParentOf["c"]
	assert.False(t, ok)
}

func TestBuildHierarchy_DoesNotMutateInput(t *testing.T) {
	cats := storeCategories()
	before := storeCategories()

	BuildHierarchy(cats)

	assert.Equal(t, before, cats)
}

func TestCategoryHierarchy_TopLevelOf(t *testing.T) {
	h := BuildHierarchy(storeCategories())

	id, ok := h.TopLevelOf("boots")
	assert.True(t, ok)
	assert.Equal(t, "shoes", id)

	id, ok = h.TopLevelOf("shirts")
	assert.True(t, ok)
	assert.Equal(t, "shirts", id)

	_, ok = h.TopLevelOf("nope")
	assert.False(t, ok)
}
